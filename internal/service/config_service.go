package service

import (
	"context"
	"time"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/internal/repository"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
)

type ConfigServiceImpl struct {
	configRepo repository.ConfigRepository
}

func CreateConfigService(configRepo repository.ConfigRepository) ConfigService {
	return &ConfigServiceImpl{configRepo: configRepo}
}

// GetConfig returns the singleton document, or the compiled-in defaults when
// none exists yet. Reading never creates the document.
func (s *ConfigServiceImpl) GetConfig(ctx context.Context) (data domain.SiteConfig, err error) {
	data, err = s.configRepo.GetConfig(ctx)
	if err == errs.ErrNotFound {
		return domain.DefaultSiteConfig(), nil
	}

	return
}

// UpdateConfig lazily creates the singleton on first write. Nil fields in
// the payload leave the stored value untouched; non-nil fields are applied
// as-is, so an explicit empty string clears a field.
func (s *ConfigServiceImpl) UpdateConfig(ctx context.Context, payload dto.ConfigRequest) (data domain.SiteConfig, err error) {
	now := time.Now().Unix()

	config, err := s.configRepo.GetConfig(ctx)
	if err == errs.ErrNotFound {
		config = domain.DefaultSiteConfig()
		applyConfigRequest(&config, payload)
		config.CreatedAt = now
		config.UpdatedAt = now

		config.ID, err = s.configRepo.InsertConfig(ctx, config)
		if err != nil {
			return
		}

		return config, nil
	}
	if err != nil {
		return
	}

	applyConfigRequest(&config, payload)
	config.UpdatedAt = now

	if err = s.configRepo.ReplaceConfig(ctx, config); err != nil {
		return
	}

	return config, nil
}

// ResetConfig deletes whatever is stored and recreates the singleton from
// the default literal, leaving exactly one document.
func (s *ConfigServiceImpl) ResetConfig(ctx context.Context) (data domain.SiteConfig, err error) {
	if err = s.configRepo.DeleteConfigs(ctx); err != nil {
		return
	}

	now := time.Now().Unix()
	config := domain.DefaultSiteConfig()
	config.CreatedAt = now
	config.UpdatedAt = now

	config.ID, err = s.configRepo.InsertConfig(ctx, config)
	if err != nil {
		return
	}

	return config, nil
}

func applyConfigRequest(config *domain.SiteConfig, payload dto.ConfigRequest) {
	if payload.AppName != nil {
		config.AppName = *payload.AppName
	}
	if payload.HomeTitle != nil {
		config.HomeTitle = *payload.HomeTitle
	}
	if payload.ThemeColor != nil {
		config.ThemeColor = *payload.ThemeColor
	}
	if payload.NavColor != nil {
		config.NavColor = *payload.NavColor
	}
	if payload.NavTextColor != nil {
		config.NavTextColor = *payload.NavTextColor
	}
	if payload.ButtonColor != nil {
		config.ButtonColor = *payload.ButtonColor
	}
	if payload.FooterColor != nil {
		config.FooterColor = *payload.FooterColor
	}
	if payload.FooterTextColor != nil {
		config.FooterTextColor = *payload.FooterTextColor
	}
	if payload.BannerImage != nil {
		config.BannerImage = *payload.BannerImage
	}
	if payload.PromoCode != nil {
		config.PromoCode = *payload.PromoCode
	}
	if payload.GradientType != nil {
		config.GradientType = *payload.GradientType
	}
	if payload.ProductCardStyle != nil {
		config.ProductCardStyle = *payload.ProductCardStyle
	}
	if payload.GridColumns != nil {
		config.GridColumns = *payload.GridColumns
	}
	if payload.Coupons != nil {
		config.Coupons = *payload.Coupons
	}
}
