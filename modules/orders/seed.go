package orders

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	demoCustomers = []string{"Acme Corp", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries"}
	demoProducts  = []string{"Starter plan", "Pro plan", "Team plan", "Support add-on", "Onboarding", "API credits"}
)

// firstOrderNumber is the number given to the first seeded order.
const firstOrderNumber = 1001

// Seed inserts n demo orders owned by accountID. Orders are spaced a minute
// apart so the newest first listing is stable.
func Seed(ctx context.Context, repo Repository, accountID bson.ObjectID, n int, now time.Time) ([]Order, error) {
	if n <= 0 {
		return nil, ErrInvalidSeedCount
	}

	orders := make([]Order, n)
	for i := range orders {
		created := now.Add(-time.Duration(n-1-i) * time.Minute).UTC().Truncate(time.Millisecond)
		orders[i] = Order{
			ID:        bson.NewObjectID(),
			Number:    firstOrderNumber + i,
			Customer:  demoCustomers[i%len(demoCustomers)],
			Product:   demoProducts[(i*5+1)%len(demoProducts)],
			AccountID: accountID,
			CreatedAt: created,
			UpdatedAt: created,
		}
	}

	if err := repo.Insert(ctx, orders); err != nil {
		return nil, fmt.Errorf("seed orders: %w", err)
	}
	return orders, nil
}
