package playlist

import (
	"context"
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Service struct {
	playlistRepo domain.PlaylistRepository
	videoRepo    domain.VideoRepository
}

var _ domain.PlaylistUsecase = (*Service)(nil)

func NewService(p domain.PlaylistRepository, v domain.VideoRepository) *Service {
	return &Service{
		playlistRepo: p,
		videoRepo:    v,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Playlist, error) {
	p, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Playlist{}, err
	}

	items, err := s.playlistRepo.FetchItems(ctx, id)
	if err != nil {
		return domain.Playlist{}, err
	}
	p.Items = items

	return p, nil
}

func (s *Service) FetchByUser(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	return s.playlistRepo.FetchByUser(ctx, userID)
}

func (s *Service) Store(ctx context.Context, p *domain.Playlist) error {
	return s.playlistRepo.Store(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *domain.Playlist, requesterID int64) error {
	existed, err := s.playlistRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if existed.UserID != requesterID {
		return domain.ErrForbidden
	}

	p.UserID = existed.UserID
	p.UpdatedAt = time.Now()
	return s.playlistRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id, requesterID int64) error {
	existed, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existed.UserID != requesterID {
		return domain.ErrForbidden
	}

	return s.playlistRepo.Delete(ctx, id)
}

func (s *Service) AddVideo(ctx context.Context, playlistID, videoID, requesterID int64) error {
	existed, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if existed.UserID != requesterID {
		return domain.ErrForbidden
	}

	// 视频必须存在
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return err
	}

	return s.playlistRepo.AddItem(ctx, playlistID, videoID)
}

func (s *Service) RemoveVideo(ctx context.Context, playlistID, videoID, requesterID int64) error {
	existed, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if existed.UserID != requesterID {
		return domain.ErrForbidden
	}

	return s.playlistRepo.RemoveItem(ctx, playlistID, videoID)
}
