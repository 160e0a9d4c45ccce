package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotConflict возвращается, когда слот уже занят конкурирующим бронированием
	// Это штатный исход гонки, а не внутренняя ошибка
	ErrSlotConflict = errors.New("slot already taken")

	// ErrStartTimeInPast возвращается при попытке забронировать прошедшее время
	ErrStartTimeInPast = errors.New("start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
