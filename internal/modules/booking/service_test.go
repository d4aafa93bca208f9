package booking

import (
	"context"
	"errors"
	"testing"

	"transferhub/internal/domain"
	"transferhub/internal/modules/lead"
	"transferhub/internal/modules/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

type MockLeadConverter struct {
	mock.Mock
}

func (m *MockLeadConverter) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadConverter) MarkConverted(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg notify.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestService_ConfirmPayment_FromLead(t *testing.T) {
	bookings := new(MockBookingRepository)
	leads := new(MockLeadConverter)
	sender := new(MockSender)
	svc := NewService(bookings, leads, sender, "AUD")

	leads.On("GetByID", mock.Anything, "lead-1").Return(&domain.Lead{
		ID:               "lead-1",
		BookingType:      domain.BookingStandard,
		PickupLocation:   "Airport",
		DropoffLocation:  "CBD",
		Email:            "a@x.com",
		FullName:         "Alice",
		QuotedPriceCents: 16000,
		Currency:         "AUD",
		Status:           domain.LeadDraft,
	}, nil)

	var created *domain.Booking
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Booking)
		}).
		Return(nil)
	leads.On("MarkConverted", mock.Anything, "a@x.com").Return(int64(1), nil)
	sender.On("Send", mock.Anything, mock.AnythingOfType("notify.Message")).Return(nil)

	b, err := svc.ConfirmPayment(context.Background(), ConfirmPaymentRequest{
		LeadID:     "lead-1",
		AmountPaid: 160,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "a@x.com", b.Email)
	assert.Equal(t, int64(16000), b.PriceCents)
	require.NotNil(t, b.LeadID)
	assert.Equal(t, "lead-1", *b.LeadID)
	leads.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestService_ConfirmPayment_SenderFailureNonFatal(t *testing.T) {
	bookings := new(MockBookingRepository)
	leads := new(MockLeadConverter)
	sender := new(MockSender)
	svc := NewService(bookings, leads, sender, "AUD")

	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	leads.On("MarkConverted", mock.Anything, "a@x.com").Return(int64(1), nil)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	_, err := svc.ConfirmPayment(context.Background(), ConfirmPaymentRequest{
		Email:      "a@x.com",
		AmountPaid: 99.5,
	})

	assert.NoError(t, err, "payment already happened, mail failure must not surface")
}

func TestService_ConfirmPayment_NoEmailNoLead(t *testing.T) {
	bookings := new(MockBookingRepository)
	leads := new(MockLeadConverter)
	sender := new(MockSender)
	svc := NewService(bookings, leads, sender, "AUD")

	_, err := svc.ConfirmPayment(context.Background(), ConfirmPaymentRequest{AmountPaid: 50})
	assert.ErrorIs(t, err, ErrValidation)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ConfirmPayment_UnknownLead(t *testing.T) {
	bookings := new(MockBookingRepository)
	leads := new(MockLeadConverter)
	sender := new(MockSender)
	svc := NewService(bookings, leads, sender, "AUD")

	leads.On("GetByID", mock.Anything, "missing").Return(nil, lead.ErrLeadNotFound)

	_, err := svc.ConfirmPayment(context.Background(), ConfirmPaymentRequest{
		LeadID:     "missing",
		AmountPaid: 50,
	})
	assert.ErrorIs(t, err, ErrUnknownLead)
}
