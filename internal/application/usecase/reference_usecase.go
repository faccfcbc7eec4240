package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

// ReferenceUseCase catálogos para combos del frontend.
type ReferenceUseCase struct {
	repo repository.ReferenceRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(repo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{repo: repo}
}

func (uc *ReferenceUseCase) Categories(ctx context.Context) (*dto.ReferenceListResponse, error) {
	list, err := uc.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ReferenceListResponse{Data: make([]dto.RefResponse, 0, len(list))}
	for _, c := range list {
		out.Data = append(out.Data, dto.RefResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (uc *ReferenceUseCase) Laboratories(ctx context.Context) (*dto.ReferenceListResponse, error) {
	list, err := uc.repo.Laboratories(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ReferenceListResponse{Data: make([]dto.RefResponse, 0, len(list))}
	for _, l := range list {
		out.Data = append(out.Data, dto.RefResponse{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

func (uc *ReferenceUseCase) Careers(ctx context.Context) (*dto.ReferenceListResponse, error) {
	list, err := uc.repo.Careers(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ReferenceListResponse{Data: make([]dto.RefResponse, 0, len(list))}
	for _, c := range list {
		out.Data = append(out.Data, dto.RefResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
