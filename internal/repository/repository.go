package repository

import "errors"

// ErrNotFound возвращается, когда запрошенной записи нет в БД.
var ErrNotFound = errors.New("запись не найдена")
