package mysql

import (
	"context"
	"errors"
	"fmt"
	"frameshop/internal/storage"
	"github.com/go-sql-driver/mysql"
)

func (s *Storage) ListStretcherStock(ctx context.Context) ([]storage.StretcherBarStock, error) {
	const op = "storage.mysql.ListStretcherStock"

	rows, err := s.db.QueryContext(ctx, `SELECT length, type, stock FROM stretcher_bar_stock ORDER BY type, length`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения остатков реек: %w", op, err)
	}
	defer rows.Close()

	var stock []storage.StretcherBarStock

	for rows.Next() {
		var item storage.StretcherBarStock

		if err := rows.Scan(&item.Length, &item.Type, &item.Stock); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		stock = append(stock, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return stock, nil
}

func (s *Storage) ListCrossbarStock(ctx context.Context) ([]storage.CrossbarStock, error) {
	const op = "storage.mysql.ListCrossbarStock"

	rows, err := s.db.QueryContext(ctx, `SELECT length, stock FROM crossbar_stock ORDER BY length`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения остатков поперечин: %w", op, err)
	}
	defer rows.Close()

	var stock []storage.CrossbarStock

	for rows.Next() {
		var item storage.CrossbarStock

		if err := rows.Scan(&item.Length, &item.Stock); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		stock = append(stock, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return stock, nil
}

func (s *Storage) ListCardboardStock(ctx context.Context) ([]storage.CardboardStock, error) {
	const op = "storage.mysql.ListCardboardStock"

	rows, err := s.db.QueryContext(ctx, `SELECT id, width, height, stock, price FROM cardboard_stock ORDER BY width, height`)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения остатков картона: %w", op, err)
	}
	defer rows.Close()

	var stock []storage.CardboardStock

	for rows.Next() {
		var item storage.CardboardStock

		if err := rows.Scan(&item.ID, &item.Width, &item.Height, &item.Stock, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		stock = append(stock, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return stock, nil
}

// UpdateStretcherStockAdmin выставляет остатки реек (приход на склад), без резервирования.
func (s *Storage) UpdateStretcherStockAdmin(ctx context.Context, items []storage.StretcherBarStock) error {
	const op = "storage.mysql.UpdateStretcherStockAdmin"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}

	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stretcher_bar_stock (length, type, stock)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE stock = VALUES(stock)
	`)
	if err != nil {
		return fmt.Errorf("%s: не удалось подготовить запрос: %w", op, err)
	}
	defer stmt.Close()

	for _, item := range items {
		if item.Stock < 0 {
			return fmt.Errorf("%s: отрицательный остаток для %d/%s: %w", op, item.Length, item.Type, storage.ErrInvalidStockItem)
		}
		if _, err := stmt.ExecContext(ctx, item.Length, item.Type, item.Stock); err != nil {
			return fmt.Errorf("%s: ошибка обновления остатка %d/%s: %w", op, item.Length, item.Type, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateCrossbarStockAdmin(ctx context.Context, items []storage.CrossbarStock) error {
	const op = "storage.mysql.UpdateCrossbarStockAdmin"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}

	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO crossbar_stock (length, stock)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE stock = VALUES(stock)
	`)
	if err != nil {
		return fmt.Errorf("%s: не удалось подготовить запрос: %w", op, err)
	}
	defer stmt.Close()

	for _, item := range items {
		if item.Stock < 0 {
			return fmt.Errorf("%s: отрицательный остаток для %d: %w", op, item.Length, storage.ErrInvalidStockItem)
		}
		if _, err := stmt.ExecContext(ctx, item.Length, item.Stock); err != nil {
			return fmt.Errorf("%s: ошибка обновления остатка %d: %w", op, item.Length, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return nil
}

// CreateCardboardStockAdmin заводит новый формат картона.
func (s *Storage) CreateCardboardStockAdmin(ctx context.Context, item storage.CardboardStock) (int64, error) {
	const op = "storage.mysql.CreateCardboardStockAdmin"

	if item.Width <= 0 || item.Height <= 0 || item.Stock < 0 || item.Price < 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrInvalidStockItem)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO cardboard_stock (width, height, stock, price) VALUES (?, ?, ?, ?)`,
		item.Width, item.Height, item.Stock, item.Price)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return 0, fmt.Errorf("%s: %dx%d: %w", op, item.Width, item.Height, storage.ErrCardboardExists)
		}
		return 0, fmt.Errorf("%s: ошибка сохранения картона: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: не удалось получить id: %w", op, err)
	}

	return id, nil
}
