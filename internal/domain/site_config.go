package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// SiteConfig is a singleton collection: at most one document exists at any
// time. It is lazily created on the first update and recreated on reset.
type SiteConfig struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AppName          string             `bson:"appName" json:"appName"`
	HomeTitle        string             `bson:"homeTitle" json:"homeTitle"`
	ThemeColor       string             `bson:"themeColor" json:"themeColor"`
	NavColor         string             `bson:"navColor" json:"navColor"`
	NavTextColor     string             `bson:"navTextColor" json:"navTextColor"`
	ButtonColor      string             `bson:"buttonColor" json:"buttonColor"`
	FooterColor      string             `bson:"footerColor" json:"footerColor"`
	FooterTextColor  string             `bson:"footerTextColor" json:"footerTextColor"`
	BannerImage      string             `bson:"bannerImage" json:"bannerImage"`
	PromoCode        string             `bson:"promoCode" json:"promoCode"`
	GradientType     string             `bson:"gradientType" json:"gradientType"`
	ProductCardStyle string             `bson:"productCardStyle" json:"productCardStyle"`
	GridColumns      int64              `bson:"gridColumns" json:"gridColumns"`
	Coupons          []Coupon           `bson:"coupons" json:"coupons"`
	CreatedAt        int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt        int64              `bson:"updatedAt" json:"updatedAt"`
}

type Coupon struct {
	Code      string  `bson:"code" json:"code"`
	Discount  float64 `bson:"discount" json:"discount"`
	MinAmount float64 `bson:"minAmount" json:"minAmount"`
	IsActive  bool    `bson:"isActive" json:"isActive"`
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		AppName:          "QuickBasket",
		HomeTitle:        "Welcome to QuickBasket",
		ThemeColor:       "#0c831f",
		NavColor:         "#ffffff",
		NavTextColor:     "#000000",
		ButtonColor:      "#0c831f",
		FooterColor:      "#111827",
		FooterTextColor:  "#ffffff",
		BannerImage:      "",
		PromoCode:        "",
		GradientType:     "default",
		ProductCardStyle: "standard",
		GridColumns:      5,
		Coupons:          []Coupon{},
	}
}
