package service

import (
	"context"
	"time"

	"testing"

	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory OrderRepository stub ───────────────────────────────────────────

type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
	seq    []uuid.UUID // creation order, oldest first
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].OrderID = o.ID
		o.Items[i].Position = i
	}
	r.orders[o.ID] = o
	r.seq = append(r.seq, o.ID)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, day string, date *time.Time) ([]model.Order, error) {
	var result []model.Order
	for i := len(r.seq) - 1; i >= 0; i-- { // newest first
		o := r.orders[r.seq[i]]
		if day != "" && o.DeliveryDay != day {
			continue
		}
		if date != nil && !o.DeliveryDate.Equal(*date) {
			continue
		}
		result = append(result, *o)
	}
	return result, nil
}

func (r *stubOrderRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range fields {
		switch col {
		case "customer_name":
			o.CustomerName = v.(string)
		case "customer_phone":
			o.CustomerPhone = v.(string)
		case "delivery_day":
			o.DeliveryDay = v.(string)
		case "delivery_date":
			o.DeliveryDate = v.(time.Time)
		case "notes":
			o.Notes = v.(string)
		}
	}
	return nil
}

func (r *stubOrderRepo) ReplaceLineItems(_ context.Context, orderID uuid.UUID, items []model.LineItem) error {
	o, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = orderID
		items[i].Position = i
	}
	o.Items = items
	return nil
}

func (r *stubOrderRepo) SetItemProduced(_ context.Context, orderID, itemID uuid.UUID, produced decimal.Decimal) error {
	o, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items[i].Produced = produced
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedOrder(t *testing.T, repo *stubOrderRepo, customer, day string, items ...model.LineItem) *model.Order {
	t.Helper()
	date, err := time.Parse("2006-01-02", "2025-01-08")
	require.NoError(t, err)
	o := &model.Order{
		CustomerName:  customer,
		CustomerPhone: "0612345678",
		DeliveryDay:   day,
		DeliveryDate:  date,
		Items:         items,
	}
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestOrderCreate(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerName:  "Mme Dubois",
		CustomerPhone: "0612345678",
		DeliveryDay:   model.DaySamedi,
		DeliveryDate:  "2025-01-11",
		Notes:         "sonner deux fois",
		Products: []dto.LineItemRequest{
			{Name: "Paupiettes", Quantity: qty("4"), Unit: model.UnitPiece},
			{Name: "Farce", Quantity: qty("500"), Unit: model.UnitGram},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mme Dubois", resp.CustomerName)
	assert.Equal(t, "2025-01-11", resp.DeliveryDate)
	require.Len(t, resp.Products, 2)
	assert.True(t, resp.Products[0].Produced.IsZero())
}

func TestOrderCreateBadDate(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerName:  "M. Martin",
		CustomerPhone: "0612345678",
		DeliveryDay:   model.DayJeudi,
		DeliveryDate:  "11/01/2025",
		Products:      []dto.LineItemRequest{{Name: "Rôti", Quantity: qty("1"), Unit: model.UnitKilogram}},
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestOrderListNewestFirstAndFiltered(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	seedOrder(t, repo, "Premier", model.DayMercredi,
		model.LineItem{Name: "Boudin", Quantity: qty("2"), Unit: model.UnitPiece})
	seedOrder(t, repo, "Second", model.DaySamedi,
		model.LineItem{Name: "Rôti", Quantity: qty("1"), Unit: model.UnitKilogram})

	all, err := svc.List(context.Background(), dto.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].CustomerName)

	wednesday, err := svc.List(context.Background(), dto.OrderFilter{Day: model.DayMercredi})
	require.NoError(t, err)
	require.Len(t, wednesday, 1)
	assert.Equal(t, "Premier", wednesday[0].CustomerName)
}

func TestOrderUpdateFieldsKeepsItems(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	o := seedOrder(t, repo, "Mme Leroy", model.DayVendredi,
		model.LineItem{Name: "Terrine", Quantity: qty("300"), Unit: model.UnitGram})

	name := "Mme Leroy-Dupont"
	day := model.DaySamedi
	date := "2025-01-11"
	resp, err := svc.Update(context.Background(), o.ID, dto.UpdateOrderRequest{
		CustomerName: &name,
		DeliveryDay:  &day,
		DeliveryDate: &date,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mme Leroy-Dupont", resp.CustomerName)
	assert.Equal(t, model.DaySamedi, resp.DeliveryDay)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Terrine", resp.Products[0].Name)
}

func TestOrderUpdateReplacesItemList(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	o := seedOrder(t, repo, "M. Bernard", model.DayJeudi,
		model.LineItem{Name: "Saucisson", Quantity: qty("1"), Unit: model.UnitPiece},
		model.LineItem{Name: "Jambon", Quantity: qty("4"), Unit: model.UnitSlice})
	oldIDs := []uuid.UUID{o.Items[0].ID, o.Items[1].ID}

	resp, err := svc.Update(context.Background(), o.ID, dto.UpdateOrderRequest{
		Products: []dto.LineItemRequest{
			{Name: "Andouillette", Quantity: qty("2"), Unit: model.UnitPiece},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Andouillette", resp.Products[0].Name)
	assert.NotContains(t, oldIDs, resp.Products[0].ID)
}

func TestOrderUpdateNotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	name := "Personne"
	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateOrderRequest{CustomerName: &name})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestOrderSetProduced(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	o := seedOrder(t, repo, "Mme Petit", model.DayMercredi,
		model.LineItem{Name: "Côtelettes", Quantity: qty("6"), Unit: model.UnitPiece})

	require.NoError(t, svc.SetProduced(context.Background(), o.ID, o.Items[0].ID, qty("8")))
	// Over-production is legal: no clamp at the data-model level.
	assert.True(t, repo.orders[o.ID].Items[0].Produced.Equal(qty("8")))

	err := svc.SetProduced(context.Background(), o.ID, uuid.New(), qty("1"))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestOrderDelete(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	o := seedOrder(t, repo, "M. Moreau", model.DaySamedi,
		model.LineItem{Name: "Gigot", Quantity: qty("1.8"), Unit: model.UnitKilogram})

	require.NoError(t, svc.Delete(context.Background(), o.ID))

	err := svc.Delete(context.Background(), o.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
