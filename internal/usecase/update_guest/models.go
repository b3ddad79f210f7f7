package update_guest

import "github.com/m04kA/SMC-FrontDeskService/internal/domain"

// Request модель запроса на частичное обновление проживания
type Request struct {
	ID    string
	Patch domain.GuestPatch
}

// Response модель ответа с обновленной записью
type Response struct {
	Guest *domain.Guest
}
