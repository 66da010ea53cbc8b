package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"roomly/internal/domain/booking"
	"roomly/internal/infra"
	"roomly/internal/pkg/errs"
	"roomly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrValidation              = errs.New("validation failed")
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrSlotUnavailable         = errs.New("timeslot is already booked")
	ErrAlreadyPaid             = errs.New("booking is already paid")
	ErrBookingCancelled        = errs.New("booking is cancelled")
	ErrForbidden               = errs.New("booking belongs to another user")
	ErrReferenceExhausted      = errs.New("could not generate a unique reference")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrPaymentProviderFailed   = errs.New("payment provider request failed")
)

// maxReferenceAttempts bounds the generate-and-insert loop; collisions on
// a 36^6 space are rare, so hitting this means something else is wrong.
const maxReferenceAttempts = 10

type CreateBookingParams struct {
	RoomID    uuid.UUID
	UserID    uuid.UUID
	UserEmail string
	CheckIn   time.Time
	Hours     int
	Guests    int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, requester uuid.UUID) error
	InitiatePayment(ctx context.Context, bookingID, requester uuid.UUID) (string, error)
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, providerTxnID string) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	roomReader     RoomReader
	paymentClient  PaymentProvider
	publisher      EventPublisher
	bookingFactory *booking.Factory
	bookingQueries queries.BookingQueries
	db             TxBeginner
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	roomReader RoomReader,
	paymentClient PaymentProvider,
	publisher EventPublisher,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	db TxBeginner,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		roomReader:     roomReader,
		paymentClient:  paymentClient,
		publisher:      publisher,
		bookingFactory: bookingFactory,
		bookingQueries: bookingQueries,
		db:             db,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(params.CheckIn, params.Hours)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	roomSpec, roomName, err := c.loadRoomSpec(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	// Each attempt builds a fresh entity so a reference collision gets a
	// new code. An interval conflict is final; only duplicate references
	// are worth retrying.
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		entity, err := c.bookingFactory.CreateBooking(roomSpec, params.UserID, slot, params.Guests)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrRoomArchived):
				return nil, errs.Mark(err, ErrRoomNotFound)
			default:
				return nil, errs.Mark(err, ErrValidation)
			}
		}

		created, err := c.insertBooking(ctx, entity)
		if err != nil {
			if errors.Is(err, errDuplicateReference) {
				slog.Warn("booking reference collision, regenerating",
					"attempt", attempt+1, "reference", entity.Reference().String())
				continue
			}
			return nil, err
		}

		c.publish(ctx, BookingEvent{
			Type:        EventBookingCreated,
			BookingID:   entity.ID(),
			Reference:   entity.Reference().String(),
			UserID:      entity.UserID(),
			UserEmail:   params.UserEmail,
			RoomName:    roomName,
			CheckIn:     entity.Slot().Start(),
			Hours:       entity.Slot().Hours(),
			AmountCents: entity.Price().Cents(),
		})
		return created, nil
	}

	return nil, ErrReferenceExhausted
}

var errDuplicateReference = errs.New("duplicate booking reference")

func (c *bookingCommandsImpl) insertBooking(ctx context.Context, entity *booking.Booking) (*queries.BookingView, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking insert", "error", rollbackErr.Error())
		}
	}()

	if err := c.bookingRepo.Create(ctx, tx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, ErrSlotUnavailable)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errDuplicateReference)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.bookingQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, requester uuid.UUID) error {
	event, err := c.transition(ctx, bookingID, func(b *booking.Booking) (string, error) {
		if b.UserID() != requester {
			return "", ErrForbidden
		}
		if err := b.Cancel(); err != nil {
			return "", mapTransitionErr(err)
		}
		return EventBookingCancelled, nil
	})
	if err != nil {
		return err
	}
	if event != nil {
		c.publish(ctx, *event)
	}
	return nil
}

func (c *bookingCommandsImpl) InitiatePayment(ctx context.Context, bookingID, requester uuid.UUID) (string, error) {
	snap, err := c.bookingRepo.Find(ctx, c.db, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrBookingNotFound)
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != requester {
		return "", ErrForbidden
	}
	switch booking.Status(snap.Status) {
	case booking.StatusPaid:
		return "", ErrAlreadyPaid
	case booking.StatusCancelled:
		return "", ErrBookingCancelled
	}

	redirectURL, err := c.paymentClient.CreateCheckout(ctx, snap.ID, snap.Reference, snap.TotalPriceCents)
	if err != nil {
		return "", errs.Mark(err, ErrPaymentProviderFailed)
	}
	return redirectURL, nil
}

// ConfirmPayment is idempotent: a second delivery for a paid booking is a
// successful no-op, with or without a matching transaction id.
func (c *bookingCommandsImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, providerTxnID string) error {
	event, err := c.transition(ctx, bookingID, func(b *booking.Booking) (string, error) {
		if b.Status() == booking.StatusPaid {
			return "", nil
		}
		if err := b.MarkPaid(providerTxnID); err != nil {
			return "", mapTransitionErr(err)
		}
		return EventBookingPaid, nil
	})
	if err != nil {
		return err
	}
	if event != nil {
		c.publish(ctx, *event)
	}
	return nil
}

// transition runs fn against the locked booking row and persists the
// resulting status change, if any. Returning an empty event type from fn
// means "nothing to do" (already in the target state).
func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	fn func(*booking.Booking) (string, error),
) (*BookingEvent, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transition", "error", rollbackErr.Error())
		}
	}()

	snap, err := c.bookingRepo.FindForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := snapshotToDomain(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	before := entity.Status()

	eventType, err := fn(entity)
	if err != nil {
		return nil, err
	}
	if entity.Status() == before {
		if err := tx.Commit(ctx); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil, nil
	}

	if err := c.bookingRepo.UpdateStatus(ctx, tx, bookingID, entity.Status(), entity.ProviderTxnID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if eventType == "" {
		return nil, nil
	}
	event := &BookingEvent{
		Type:        eventType,
		BookingID:   entity.ID(),
		Reference:   entity.Reference().String(),
		UserID:      entity.UserID(),
		CheckIn:     entity.Slot().Start(),
		Hours:       entity.Slot().Hours(),
		AmountCents: entity.Price().Cents(),
	}
	// The event is best-effort, so a failed room lookup costs only the
	// name in the notification, never the transition.
	if rm, err := c.roomReader.FindByID(ctx, entity.RoomID()); err == nil {
		event.RoomName = rm.Name()
	} else {
		slog.Warn("failed to load room for booking event",
			"booking_id", bookingID.String(), "error", err.Error())
	}
	return event, nil
}

func (c *bookingCommandsImpl) loadRoomSpec(ctx context.Context, roomID uuid.UUID) (booking.RoomSpec, string, error) {
	rm, err := c.roomReader.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.RoomSpec{}, "", errs.Mark(err, ErrRoomNotFound)
		}
		return booking.RoomSpec{}, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.Archived() {
		return booking.RoomSpec{}, "", ErrRoomNotFound
	}

	discount, err := booking.NewDiscount(rm.DiscountPercent(), rm.DiscountStart(), rm.DiscountEnd())
	if err != nil {
		return booking.RoomSpec{}, "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return booking.RoomSpec{
		ID:              rm.ID(),
		OwnerID:         rm.OwnerID(),
		HourlyRateCents: rm.HourlyRateCents(),
		Discount:        discount,
		Archived:        rm.Archived(),
	}, rm.Name(), nil
}

// publish is fire-and-forget: notification failures never affect the
// booking outcome.
func (c *bookingCommandsImpl) publish(ctx context.Context, event BookingEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish booking event",
			"type", event.Type, "booking_id", event.BookingID.String(), "error", err.Error())
	}
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrAlreadyPaid):
		return ErrAlreadyPaid
	case errors.Is(err, booking.ErrBookingCancelled):
		return ErrBookingCancelled
	default:
		return errs.Mark(err, ErrValidation)
	}
}

func snapshotToDomain(snap *BookingSnapshot) (*booking.Booking, error) {
	status := booking.Status(snap.Status)
	if !status.IsValid() {
		return nil, errs.New("unknown booking status " + snap.Status)
	}
	ref, err := booking.ParseReference(snap.Reference)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlotFromRange(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(snap.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		snap.ID, ref, snap.RoomID, snap.UserID, slot, snap.Guests, price,
		status, snap.ProviderTxnID, snap.CreatedAt, snap.UpdatedAt,
	), nil
}
