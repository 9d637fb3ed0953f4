package command

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
)

type fakeMenuRepo struct {
	items map[uint]*menudomain.MenuItem
}

func (f *fakeMenuRepo) Create(item *menudomain.MenuItem) error { return errors.New("not supported") }
func (f *fakeMenuRepo) Update(item *menudomain.MenuItem) error { return errors.New("not supported") }
func (f *fakeMenuRepo) Delete(id uint) error                   { return errors.New("not supported") }
func (f *fakeMenuRepo) FindAll(limit, offset int) ([]menudomain.MenuItem, error) {
	return nil, nil
}

func (f *fakeMenuRepo) FindByID(id uint) (*menudomain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func TestCreateOrder(t *testing.T) {
	orders := newFakeOrderRepo()
	menu := &fakeMenuRepo{items: map[uint]*menudomain.MenuItem{
		1: {ID: 1, Name: "Margherita", Price: 9.5},
		2: {ID: 2, Name: "Lemonade", Price: 3},
	}}
	events := &fakePublisher{}
	handler := NewCreateOrderHandler(orders, menu, events)

	order, err := handler.Handle(context.Background(), CreateOrderCommand{
		CustomerName: "Table 2",
		Items: []CreateOrderItem{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if order.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.TotalAmount != 22 {
		t.Errorf("total = %v, want 22", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Items[0].PriceAtOrder != 9.5 {
		t.Errorf("price at order = %v, want 9.5", order.Items[0].PriceAtOrder)
	}
	if len(events.placed) != 1 || events.placed[0] != order.ID {
		t.Errorf("published placed events = %v, want [%d]", events.placed, order.ID)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	orders := newFakeOrderRepo()
	menu := &fakeMenuRepo{items: map[uint]*menudomain.MenuItem{
		1: {ID: 1, Name: "Margherita", Price: 9.5},
	}}
	handler := NewCreateOrderHandler(orders, menu, nil)

	cases := []struct {
		name string
		cmd  CreateOrderCommand
		want error
	}{
		{"missing customer", CreateOrderCommand{Items: []CreateOrderItem{{MenuItemID: 1, Quantity: 1}}}, domain.ErrInvalidArgument},
		{"no items", CreateOrderCommand{CustomerName: "Table 1"}, domain.ErrInvalidArgument},
		{"zero quantity", CreateOrderCommand{CustomerName: "Table 1", Items: []CreateOrderItem{{MenuItemID: 1}}}, domain.ErrInvalidArgument},
		{"unknown menu item", CreateOrderCommand{CustomerName: "Table 1", Items: []CreateOrderItem{{MenuItemID: 9, Quantity: 1}}}, domain.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}
