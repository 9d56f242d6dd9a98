package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/comment"
)

type commentRepository struct {
	db *sqlx.DB
}

var _ comment.Repository = (*commentRepository)(nil) // interface compliance check

func NewCommentRepository(db *sqlx.DB) *commentRepository {
	return &commentRepository{db: db}
}

func (repo commentRepository) CreateComment(ctx context.Context, cmt comment.Comment) (comment.Comment, error) {
	query := repo.db.Rebind(`
		INSERT INTO student_record_comments (category, subcategory, attribute, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`)

	res, err := repo.db.ExecContext(ctx, query,
		cmt.Category, cmt.Subcategory, cmt.Attribute, cmt.Content, cmt.CreatedAt, cmt.UpdatedAt)
	if err != nil {
		return comment.Comment{}, errors.Wrap(err, "inserting comment")
	}
	if id, err := res.LastInsertId(); err == nil {
		cmt.ID = id
	}
	return cmt, nil
}

func (repo commentRepository) QueryAllComments(ctx context.Context, ordering ...core.DBOrdering) ([]comment.Comment, error) {
	query := `SELECT id, category, subcategory, attribute, content, created_at, updated_at FROM student_record_comments`
	if len(ordering) > 0 {
		orderList := make([]string, 0, len(ordering))
		for _, ord := range ordering {
			orderList = append(orderList, ord.String())
		}
		query += " ORDER BY " + strings.Join(orderList, ", ")
	}

	cmts := make([]comment.Comment, 0)
	if err := repo.db.SelectContext(ctx, &cmts, query); err != nil {
		return nil, errors.Wrap(err, "querying comments")
	}
	return cmts, nil
}

func (repo commentRepository) FilterComments(ctx context.Context, subcategory, attribute string) ([]comment.Comment, error) {
	query := `SELECT id, category, subcategory, attribute, content, created_at, updated_at
		FROM student_record_comments WHERE subcategory = ?`
	args := []interface{}{subcategory}
	if attribute != "" {
		query += ` AND attribute = ?`
		args = append(args, attribute)
	}

	cmts := make([]comment.Comment, 0)
	if err := repo.db.SelectContext(ctx, &cmts, repo.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "filtering comments")
	}
	return cmts, nil
}

func (repo commentRepository) GetCommentByID(ctx context.Context, id int64) (comment.Comment, error) {
	query := repo.db.Rebind(`
		SELECT id, category, subcategory, attribute, content, created_at, updated_at
		FROM student_record_comments WHERE id = ?`)

	var cmt comment.Comment
	if err := repo.db.GetContext(ctx, &cmt, query, id); err != nil {
		if err == sql.ErrNoRows {
			return comment.Comment{}, comment.ErrNotFound
		}
		return comment.Comment{}, errors.Wrap(err, "finding comment by ID")
	}
	return cmt, nil
}

func (repo commentRepository) UpdateComment(ctx context.Context, cmt comment.Comment) (comment.Comment, error) {
	query := repo.db.Rebind(`
		UPDATE student_record_comments
		SET category = ?, subcategory = ?, attribute = ?, content = ?, updated_at = ?
		WHERE id = ?`)

	if _, err := repo.db.ExecContext(ctx, query,
		cmt.Category, cmt.Subcategory, cmt.Attribute, cmt.Content, cmt.UpdatedAt, cmt.ID); err != nil {
		return comment.Comment{}, errors.Wrap(err, "updating comment")
	}
	return cmt, nil
}

func (repo commentRepository) DeleteComment(ctx context.Context, id int64) error {
	query := repo.db.Rebind(`DELETE FROM student_record_comments WHERE id = ?`)
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return errors.Wrap(err, "deleting comment")
	}
	return nil
}
