package repository

import (
	"context"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// AIRepository AI bilan ishlash uchun interface
type AIRepository interface {
	// CommentOnBuild tayyor konfiguratsiya haqida qisqa izoh
	CommentOnBuild(ctx context.Context, req entity.Requirements, result *entity.Result) (string, error)

	Close() error
}
