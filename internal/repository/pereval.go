package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fstr-tourism/pereval-api/internal/domain"
	"github.com/fstr-tourism/pereval-api/internal/repository/dao"
)

var (
	ErrPerevalNotFound         = dao.ErrPerevalNotFound
	ErrPerevalNotEditable      = dao.ErrPerevalNotEditable
	ErrInvalidStatusTransition = dao.ErrInvalidStatusTransition
)

type PerevalDAO interface {
	Insert(ctx context.Context, pereval dao.Pereval, images []dao.PImage) (uint, error)
	FindByID(ctx context.Context, id uint) (dao.Pereval, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Pereval, error)
	Update(ctx context.Context, id uint, patch dao.PerevalPatch) (dao.Status, error)
	UpdateStatus(ctx context.Context, id uint, to dao.Status, allowed func(from dao.Status) bool) (dao.Status, error)
}

type PerevalRepository struct {
	dao PerevalDAO
	now func() time.Time
}

func NewPerevalRepository(dao PerevalDAO) *PerevalRepository {
	return &PerevalRepository{
		dao: dao,
		now: time.Now,
	}
}

func (r *PerevalRepository) Create(ctx context.Context, p domain.NewPereval) (uint, error) {
	addTime := p.AddTime
	if addTime.IsZero() {
		addTime = r.now()
	}

	row := dao.Pereval{
		BeautyTitle: p.BeautyTitle,
		Title:       p.Title,
		OtherTitles: p.OtherTitles,
		Connect:     p.Connect,
		AddTime:     domain.NaiveTime(addTime),
		Coords:      coordsDomainToDao(p.Coords),
		User:        userDomainToDao(p.User),
		LevelWinter: p.Level.Winter,
		LevelSummer: p.Level.Summer,
		LevelAutumn: p.Level.Autumn,
		LevelSpring: p.Level.Spring,
	}

	id, err := r.dao.Insert(ctx, row, imagesDomainToDao(p.Images))
	if err != nil {
		return 0, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return id, nil
}

func (r *PerevalRepository) FindByID(ctx context.Context, id uint) (domain.Pereval, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Pereval{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return perevalDaoToDomain(found), nil
}

func (r *PerevalRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Pereval, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	perevals := make([]domain.Pereval, 0, len(found))
	for _, p := range found {
		perevals = append(perevals, perevalDaoToDomain(p))
	}

	return perevals, nil
}

// Update returns the status the pereval had when the patch was checked.
func (r *PerevalRepository) Update(ctx context.Context, id uint, patch domain.PerevalPatch) (domain.Status, error) {
	status, err := r.dao.Update(ctx, id, patchDomainToDao(patch))
	if err != nil {
		return domain.Status(status), fmt.Errorf("r.dao.Update -> %w", err)
	}

	return domain.Status(status), nil
}

func (r *PerevalRepository) UpdateStatus(ctx context.Context, id uint, to domain.Status) (domain.Status, error) {
	allowed := func(from dao.Status) bool {
		return domain.Status(from).CanTransitionTo(to)
	}

	from, err := r.dao.UpdateStatus(ctx, id, dao.Status(to), allowed)
	if err != nil {
		return domain.Status(from), fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return domain.Status(from), nil
}

func coordsDomainToDao(c domain.Coords) dao.Coord {
	return dao.Coord{
		ID:        c.ID,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Height:    c.Height,
	}
}

func imagesDomainToDao(images []domain.ImageUpload) []dao.PImage {
	rows := make([]dao.PImage, 0, len(images))
	for _, img := range images {
		rows = append(rows, dao.PImage{
			Title: img.Title,
			Img:   domain.DecodeImageData(img.Data),
		})
	}
	return rows
}

func patchDomainToDao(p domain.PerevalPatch) dao.PerevalPatch {
	var patch dao.PerevalPatch

	columns := map[string]interface{}{}
	if p.BeautyTitle.Set {
		columns["beauty_title"] = p.BeautyTitle.Value
	}
	if p.Title.Set {
		columns["title"] = p.Title.Value
	}
	if p.OtherTitles.Set {
		columns["other_titles"] = p.OtherTitles.Value
	}
	if p.Connect.Set {
		columns["connect"] = p.Connect.Value
	}
	if p.AddTime.Set {
		columns["add_time"] = domain.NaiveTime(p.AddTime.Value)
	}
	if len(columns) > 0 {
		patch.Columns = columns
	}

	if p.Coords.Set {
		coord := coordsDomainToDao(p.Coords.Value)
		patch.Coords = &coord
	}

	if p.Level.Set {
		patch.Level = &dao.Level{
			Winter: p.Level.Value.Winter,
			Summer: p.Level.Value.Summer,
			Autumn: p.Level.Value.Autumn,
			Spring: p.Level.Value.Spring,
		}
	}

	if p.Images.Set {
		images := imagesDomainToDao(p.Images.Value)
		patch.Images = &images
	}

	return patch
}

func perevalDaoToDomain(p dao.Pereval) domain.Pereval {
	pereval := domain.Pereval{
		ID:          p.ID,
		BeautyTitle: p.BeautyTitle,
		Title:       p.Title,
		OtherTitles: p.OtherTitles,
		Connect:     p.Connect,
		AddTime:     p.AddTime,
		Level: domain.Level{
			Winter: p.LevelWinter,
			Summer: p.LevelSummer,
			Autumn: p.LevelAutumn,
			Spring: p.LevelSpring,
		},
		Status: domain.Status(p.Status),
		User:   userDaoToDomain(p.User),
		Coords: domain.Coords{
			ID:        p.Coords.ID,
			Latitude:  p.Coords.Latitude,
			Longitude: p.Coords.Longitude,
			Height:    p.Coords.Height,
		},
		Images: make([]domain.Image, 0, len(p.Images)),
	}

	for _, link := range p.Images {
		pereval.Images = append(pereval.Images, domain.Image{
			ID:      link.Image.ID,
			Title:   link.Image.Title,
			Data:    link.Image.Img,
			AddedAt: link.DateAdded,
		})
	}

	return pereval
}
