package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"roombook/internal/models"
	"roombook/internal/repository"
	"roombook/pkg/rabbitmq"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room not found")

type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	ListRooms(ctx context.Context, limit, offset int) ([]models.Room, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
}

type roomService struct {
	repo      repository.RoomRepository
	publisher *rabbitmq.Publisher
}

func NewRoomService(repo repository.RoomRepository, publisher *rabbitmq.Publisher) RoomService {
	return &roomService{repo: repo, publisher: publisher}
}

func (s *roomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if err := s.repo.Create(ctx, room); err != nil {
		return fmt.Errorf("create room: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "room.created", room); err != nil {
			log.Printf("[RoomService] publish room.created: %v", err)
		}
	}

	return nil
}

func (s *roomService) ListRooms(ctx context.Context, limit, offset int) ([]models.Room, error) {
	return s.repo.FindAll(ctx, limit, offset)
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("delete room: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "room.deleted", map[string]uint{"id": id}); err != nil {
			log.Printf("[RoomService] publish room.deleted: %v", err)
		}
	}

	return nil
}
