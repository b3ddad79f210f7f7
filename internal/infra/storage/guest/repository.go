package guest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FrontDeskService/pkg/psqlbuilder"
)

const tableGuests = "guests"

// guestColumns порядок колонок совпадает с порядком в scanGuest
var guestColumns = []string{
	"id",
	"unit_id",
	"bed",
	"name",
	"document",
	"phone",
	"check_in",
	"check_out",
	"price",
	"accommodation_type",
	"bed_type",
	"status",
	"payment_method",
	"payment_status",
	"notes",
	"checkout_released",
	"schema_version",
	"created_at",
	"updated_at",
}

// searchColumns колонки, по которым работает текстовый поиск
var searchColumns = []string{"name", "document", "phone", "unit_id", "bed", "notes"}

// Repository репозиторий записей о проживании
type Repository struct {
	db    DBExecutor
	newID func() string
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		db:    db,
		newID: func() string { return uuid.NewString() },
	}
}

// Create сохраняет новую запись о проживании. ID генерируется здесь, created_at и updated_at выставляет БД
// Если в контексте есть транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	guest.ID = r.newID()
	if guest.SchemaVersion == 0 {
		guest.SchemaVersion = domain.GuestSchemaVersion
	}

	query, args, err := psqlbuilder.Insert(tableGuests).
		Columns(
			"id",
			"unit_id",
			"bed",
			"name",
			"document",
			"phone",
			"check_in",
			"check_out",
			"price",
			"accommodation_type",
			"bed_type",
			"status",
			"payment_method",
			"payment_status",
			"notes",
			"checkout_released",
			"schema_version",
		).
		Values(
			guest.ID,
			guest.UnitID,
			guest.Bed,
			guest.Name,
			guest.Document,
			guest.Phone,
			guest.CheckIn,
			guest.CheckOut,
			guest.Price,
			guest.AccommodationType,
			guest.BedType,
			guest.Status,
			guest.PaymentMethod,
			guest.PaymentStatus,
			guest.Notes,
			guest.CheckoutReleased,
			guest.SchemaVersion,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time

	return guest, nil
}

// GetByID получает запись о проживании по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(guestColumns...).
		From(tableGuests).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	guest, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %v", ErrScanRow, err)
	}

	return guest, nil
}

// List получает записи по фильтру, новые первыми (created_at DESC)
//
// Внутри транзакции с фильтром по номеру строки блокируются (FOR UPDATE),
// чтобы параллельная регистрация в тот же номер ждала завершения проверки доступности
func (r *Repository) List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(guestColumns...).
		From(tableGuests)

	if filter.UnitID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"unit_id": *filter.UnitID})
	}
	if filter.Document != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"document": *filter.Document})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.AccommodationType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"accommodation_type": *filter.AccommodationType})
	}
	if filter.PaymentStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.PaymentStatus})
	}

	// Фильтрация по периоду заезда
	if filter.CheckInFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"check_in": *filter.CheckInFrom})
	}
	if filter.CheckInTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"check_in": *filter.CheckInTo})
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		or := make(squirrel.Or, 0, len(searchColumns))
		for _, col := range searchColumns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		selectBuilder = selectBuilder.Where(or)
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC")

	if dbmetrics.IsInTransaction(ctx) && filter.UnitID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanGuests(rows)
}

// Update применяет частичное обновление и возвращает запись целиком
// id и created_at не обновляются никогда
func (r *Repository) Update(ctx context.Context, id string, patch domain.GuestPatch) (*domain.Guest, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableGuests).
		SetMap(patchColumns(patch)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(guestColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	guest, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return guest, nil
}

// Delete удаляет запись о проживании
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableGuests).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// patchColumns возвращает колонки для обновления (SetMap сортирует ключи)
func patchColumns(p domain.GuestPatch) map[string]interface{} {
	cols := make(map[string]interface{})
	if p.UnitID != nil {
		cols["unit_id"] = *p.UnitID
	}
	if p.Bed != nil {
		cols["bed"] = *p.Bed
	}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Document != nil {
		cols["document"] = *p.Document
	}
	if p.Phone != nil {
		cols["phone"] = *p.Phone
	}
	if p.CheckIn != nil {
		cols["check_in"] = *p.CheckIn
	}
	if p.CheckOut != nil {
		cols["check_out"] = *p.CheckOut
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.AccommodationType != nil {
		cols["accommodation_type"] = *p.AccommodationType
	}
	if p.BedType != nil {
		cols["bed_type"] = *p.BedType
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.PaymentMethod != nil {
		cols["payment_method"] = *p.PaymentMethod
	}
	if p.PaymentStatus != nil {
		cols["payment_status"] = *p.PaymentStatus
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.CheckoutReleased != nil {
		cols["checkout_released"] = *p.CheckoutReleased
	}
	return cols
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanGuest сканирует одну строку в порядке guestColumns
func scanGuest(row rowScanner) (*domain.Guest, error) {
	var guest domain.Guest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&guest.ID,
		&guest.UnitID,
		&guest.Bed,
		&guest.Name,
		&guest.Document,
		&guest.Phone,
		&guest.CheckIn,
		&guest.CheckOut,
		&guest.Price,
		&guest.AccommodationType,
		&guest.BedType,
		&guest.Status,
		&guest.PaymentMethod,
		&guest.PaymentStatus,
		&guest.Notes,
		&guest.CheckoutReleased,
		&guest.SchemaVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	guest.CreatedAt = createdAt.Time
	guest.UpdatedAt = updatedAt.Time

	return &guest, nil
}

// scanGuests сканирует результаты запроса в слайс записей
func (r *Repository) scanGuests(rows *sql.Rows) ([]*domain.Guest, error) {
	guests := make([]*domain.Guest, 0)

	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanGuests - scan row: %v", ErrScanRow, err)
		}
		guests = append(guests, guest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanGuests - rows error: %v", ErrScanRow, err)
	}

	return guests, nil
}
