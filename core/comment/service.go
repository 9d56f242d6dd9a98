package comment

import (
	"context"
	"errors"
	"time"

	"github.com/vicsion901-rgb/onlyteaching/core"
)

var (
	// errors
	ErrNotFound = errors.New("comment not found")
)

type (
	Repository interface {
		CreateComment(ctx context.Context, cmt Comment) (Comment, error)
		QueryAllComments(ctx context.Context, ordering ...core.DBOrdering) ([]Comment, error)
		// FilterComments matches on subcategory and, when non-empty, attribute.
		FilterComments(ctx context.Context, subcategory, attribute string) ([]Comment, error)
		GetCommentByID(ctx context.Context, id int64) (Comment, error)
		UpdateComment(ctx context.Context, cmt Comment) (Comment, error)
		DeleteComment(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewComment) (Comment, error) {
	now := time.Now().UTC()
	cmt := Comment{
		Category:    nc.Category,
		Subcategory: nc.Subcategory,
		Attribute:   nc.Attribute,
		Content:     nc.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateComment(ctx, cmt)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Comment, error) {
	return svc.repo.QueryAllComments(ctx, core.DBOrdering{Field: "id", Ascending: false})
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Comment, error) {
	return svc.repo.GetCommentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int64, uc UpdateComment) (Comment, error) {
	cmt, err := svc.repo.GetCommentByID(ctx, id)
	if err != nil {
		return Comment{}, err
	}
	if uc.Category != "" {
		cmt.Category = uc.Category
	}
	if uc.Subcategory != "" {
		cmt.Subcategory = uc.Subcategory
	}
	if uc.Attribute != "" {
		cmt.Attribute = uc.Attribute
	}
	if uc.Content != "" {
		cmt.Content = uc.Content
	}
	cmt.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateComment(ctx, cmt)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteComment(ctx, id)
}
