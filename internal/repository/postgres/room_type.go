package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type roomTypeRepository struct {
	db *sql.DB
}

func NewRoomTypeRepository(db *sql.DB) repository.RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	query := `INSERT INTO room_types (name, description, capacity) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, rt.Name, rt.Description, rt.Capacity).Scan(&rt.ID); err != nil {
		return apperror.Storage("create room type", err)
	}
	return nil
}

func (r *roomTypeRepository) GetByID(ctx context.Context, id int32) (*domain.RoomType, error) {
	rt := &domain.RoomType{}
	query := `SELECT id, name, description, capacity FROM room_types WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.Name, &rt.Description, &rt.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("room type %d not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("get room type", err)
	}
	return rt, nil
}

func (r *roomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, capacity FROM room_types ORDER BY id`)
	if err != nil {
		return nil, apperror.Storage("list room types", err)
	}
	defer rows.Close()

	var types []domain.RoomType
	for rows.Next() {
		var rt domain.RoomType
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.Description, &rt.Capacity); err != nil {
			return nil, apperror.Storage("scan room type", err)
		}
		types = append(types, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate room types", err)
	}
	return types, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	// Capacity is deliberately not updatable once the type exists; only the
	// descriptive fields change.
	query := `UPDATE room_types SET name=$1, description=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, rt.Name, rt.Description, rt.ID)
	if err != nil {
		return apperror.Storage("update room type", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("room type %d not found", rt.ID)
	}
	return nil
}

func (r *roomTypeRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage("delete room type", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("room type %d not found", id)
	}
	return nil
}
