package repository

import "github.com/chefskiss/festival-api/internal/repository/dao"

var (
	ErrEventNotFound         = dao.ErrEventNotFound
	ErrActiveEventConflict   = dao.ErrActiveEventConflict
	ErrApplicationNotFound   = dao.ErrApplicationNotFound
	ErrApplicationIDConflict = dao.ErrApplicationIDConflict
)

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
