package dto

type Filter struct {
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
	Keyword  string `query:"keyword"`
	Category string `query:"category"`
}
