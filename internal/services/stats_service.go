package services

import (
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/coopgretz/HomeStorage/internal/repository"
)

type StatsService interface {
	GetStats(ownerID string) (*dto.StatsDTO, error)
}

type statsServiceImpl struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
}

func NewStatsService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository) StatsService {
	return &statsServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo}
}

func (s *statsServiceImpl) GetStats(ownerID string) (*dto.StatsDTO, error) {
	totalBoxes, err := s.boxRepo.Count(ownerID)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.itemRepo.CountByStatus(ownerID)
	if err != nil {
		return nil, err
	}
	stats := &dto.StatsDTO{
		TotalBoxes:    totalBoxes,
		ItemsInBox:    byStatus[models.StatusInBox],
		ItemsOutOfBox: byStatus[models.StatusOutOfBox],
	}
	stats.TotalItems = stats.ItemsInBox + stats.ItemsOutOfBox
	return stats, nil
}
