package demodata_test

import (
	"context"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/demodata"
	"winsbygroup.com/lunchly/internal/reservation"
	"winsbygroup.com/lunchly/internal/testutil"
)

func TestDemoDataLoads(t *testing.T) {
	db := testutil.NewTestDBAt(t, filepath.Join(t.TempDir(), "demo.db"))

	if err := demodata.Load(db.DB); err != nil {
		t.Fatalf("load demo data: %v", err)
	}

	ctx := context.Background()
	resSvc := reservation.NewService(db)
	svc := customer.NewService(db, resSvc)

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 8 {
		t.Errorf("expected 8 demo customers, got %d", len(all))
	}

	best, err := svc.GetBest(ctx)
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if len(best) == 0 || best[0].FullName() != "Carlos Doe" {
		t.Errorf("expected Carlos Doe to top the demo ranking, got %+v", best)
	}

	// Sample timestamps must scan back as times
	res, err := resSvc.GetForCustomer(ctx, best[0].ID)
	if err != nil {
		t.Fatalf("reservations: %v", err)
	}
	if len(res) != 4 || res[0].StartAt.IsZero() {
		t.Errorf("unexpected demo reservations %+v", res)
	}
}

func TestDemoDataRejectedOnPopulatedDB(t *testing.T) {
	db := testutil.NewTestDB(t)

	if err := demodata.Load(db.DB); err != nil {
		t.Fatalf("first load: %v", err)
	}
	// fixed ids collide on a second load
	if err := demodata.Load(db.DB); err == nil {
		t.Error("expected second load into a populated database to fail")
	}
}
