package dto

import "github.com/quickbasket/quickbasket-api/internal/domain"

// ConfigRequest distinguishes "leave unchanged" (nil) from "set" (non-nil),
// so a field can be cleared by sending an explicit empty string. Coupons are
// replaced wholesale when present, never merged.
type ConfigRequest struct {
	AppName          *string          `json:"appName"`
	HomeTitle        *string          `json:"homeTitle"`
	ThemeColor       *string          `json:"themeColor"`
	NavColor         *string          `json:"navColor"`
	NavTextColor     *string          `json:"navTextColor"`
	ButtonColor      *string          `json:"buttonColor"`
	FooterColor      *string          `json:"footerColor"`
	FooterTextColor  *string          `json:"footerTextColor"`
	BannerImage      *string          `json:"bannerImage"`
	PromoCode        *string          `json:"promoCode"`
	GradientType     *string          `json:"gradientType"`
	ProductCardStyle *string          `json:"productCardStyle"`
	GridColumns      *int64           `json:"gridColumns"`
	Coupons          *[]domain.Coupon `json:"coupons"`
}
