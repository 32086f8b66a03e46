package orders

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrInvalidSeedCount = errors.New("orders: seed count must be positive")

type Order struct {
	ID        bson.ObjectID `bson:"_id"`
	Number    int           `bson:"number"`
	Customer  string        `bson:"customer"`
	Product   string        `bson:"product"`
	AccountID bson.ObjectID `bson:"userId"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

// Repository persists orders.
type Repository interface {
	// List returns all orders, newest first.
	List(ctx context.Context) ([]Order, error)
	Insert(ctx context.Context, orders []Order) error
}
