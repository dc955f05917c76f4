package service

import (
	"context"
	"testing"

	"backoffice-service/internal/models"
	"backoffice-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentStore struct {
	methods map[int64]*models.PaymentMethod
	nextID  int64
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{methods: map[int64]*models.PaymentMethod{}, nextID: 1}
}

func (f *fakePaymentStore) GetPaymentMethods(ctx context.Context, includeInactive bool) ([]models.PaymentMethod, error) {
	var result []models.PaymentMethod
	for _, m := range f.methods {
		if includeInactive || m.Active {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (f *fakePaymentStore) GetPaymentMethodByID(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	m, ok := f.methods[id]
	if !ok {
		return nil, store.ErrPaymentMethodNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakePaymentStore) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	method.ID = f.nextID
	method.Active = true
	f.nextID++
	copied := *method
	f.methods[method.ID] = &copied
	return nil
}

func (f *fakePaymentStore) UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) (bool, error) {
	existing, ok := f.methods[method.ID]
	if !ok {
		return false, nil
	}
	existing.Name = method.Name
	existing.Description = method.Description
	existing.FeePercent = method.FeePercent
	return true, nil
}

func (f *fakePaymentStore) DeactivatePaymentMethod(ctx context.Context, id int64) (bool, error) {
	existing, ok := f.methods[id]
	if !ok {
		return false, nil
	}
	existing.Active = false
	return true, nil
}

func TestCreatePaymentMethod(t *testing.T) {
	svc := NewPaymentMethodService(newFakePaymentStore())

	method, err := svc.Create(context.Background(), &PaymentMethodInput{
		Name:       "  Cartao de credito ",
		FeePercent: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cartao de credito", method.Name)
	assert.True(t, method.Active)
	assert.NotZero(t, method.ID)
}

func TestCreatePaymentMethodValidation(t *testing.T) {
	svc := NewPaymentMethodService(newFakePaymentStore())

	_, err := svc.Create(context.Background(), &PaymentMethodInput{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), &PaymentMethodInput{Name: "Pix", FeePercent: 101})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), &PaymentMethodInput{Name: "Pix", FeePercent: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePaymentMethodNotFound(t *testing.T) {
	svc := NewPaymentMethodService(newFakePaymentStore())

	_, err := svc.Update(context.Background(), 99, &PaymentMethodInput{Name: "Dinheiro"})
	assert.ErrorIs(t, err, store.ErrPaymentMethodNotFound)
}

func TestDeactivatePaymentMethod(t *testing.T) {
	fs := newFakePaymentStore()
	svc := NewPaymentMethodService(fs)

	method, err := svc.Create(context.Background(), &PaymentMethodInput{Name: "Boleto"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), method.ID))

	active, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRecordPriceChangeValidation(t *testing.T) {
	svc := NewPriceService(nil)

	_, err := svc.RecordChange(context.Background(), 1, 0, 42)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordChange(context.Background(), 1, -10, 42)
	assert.ErrorIs(t, err, ErrValidation)
}
