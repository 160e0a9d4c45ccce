package sendgrid

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("sendgrid client: failed to send email")

	// ErrDisabled возвращается, когда отправка писем выключена конфигурацией
	ErrDisabled = errors.New("sendgrid client: email notifications disabled")
)
