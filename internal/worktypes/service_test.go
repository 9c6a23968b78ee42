package worktypes

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeRepository struct {
	workTypes []models.WorkType
}

func (f *fakeRepository) Create(ctx context.Context, workType *models.WorkType) error {
	workType.ID = uuid.New()
	f.workTypes = append(f.workTypes, *workType)
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkType, error) {
	for i := range f.workTypes {
		if f.workTypes[i].ID == id {
			return &f.workTypes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindByName(ctx context.Context, name string) (*models.WorkType, error) {
	for i := range f.workTypes {
		if strings.EqualFold(f.workTypes[i].Name, strings.TrimSpace(name)) {
			return &f.workTypes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) List(ctx context.Context, activeOnly bool) ([]models.WorkType, error) {
	if !activeOnly {
		return f.workTypes, nil
	}
	var active []models.WorkType
	for _, wt := range f.workTypes {
		if wt.IsActive {
			active = append(active, wt)
		}
	}
	return active, nil
}

func (f *fakeRepository) Update(ctx context.Context, workType *models.WorkType) error {
	for i := range f.workTypes {
		if f.workTypes[i].ID == workType.ID {
			f.workTypes[i] = *workType
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepository) Upsert(ctx context.Context, workType *models.WorkType) error {
	for i := range f.workTypes {
		if strings.EqualFold(f.workTypes[i].Name, workType.Name) {
			f.workTypes[i].DefaultPrice = workType.DefaultPrice
			f.workTypes[i].IsActive = workType.IsActive
			return nil
		}
	}
	return f.Create(ctx, workType)
}

func TestParsePriceText(t *testing.T) {
	cases := []struct {
		text  string
		valid bool
		want  string
	}{
		{"150", true, "150"},
		{"150 - 250", true, "150"},
		{"150 - 250 - 300", true, "150"},
		{"GRAM + 200", false, ""},
		{"", false, ""},
		{"  750  ", true, "750"},
	}
	for _, tc := range cases {
		got := ParsePriceText(tc.text)
		if got.Valid != tc.valid {
			t.Errorf("ParsePriceText(%q).Valid = %v, want %v", tc.text, got.Valid, tc.valid)
			continue
		}
		if tc.valid && !got.Decimal.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ParsePriceText(%q) = %s, want %s", tc.text, got.Decimal, tc.want)
		}
	}
}

func TestEnsureAutoCreatesWithSeedPrice(t *testing.T) {
	repo := &fakeRepository{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	wt, err := svc.Ensure(context.Background(), "Yeni İş", decimal.NewFromInt(350))
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if !wt.DefaultPrice.Valid || !wt.DefaultPrice.Decimal.Equal(decimal.NewFromInt(350)) {
		t.Errorf("DefaultPrice = %+v, want seeded 350", wt.DefaultPrice)
	}
	if !wt.IsActive {
		t.Error("new work types must be active")
	}
}

func TestEnsureMatchesCaseInsensitively(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := NewService(repo)
	first, _ := svc.Ensure(context.Background(), "YÜZÜK RODAJ", decimal.NewFromInt(300))

	second, err := svc.Ensure(context.Background(), "yüzük rodaj", decimal.NewFromInt(999))
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if second.ID != first.ID {
		t.Error("differently-cased names must resolve to one entry")
	}
	if !second.DefaultPrice.Decimal.Equal(decimal.NewFromInt(300)) {
		t.Error("existing entries must not be re-priced by later jobs")
	}
}

func TestEnsureZeroPriceLeavesNullDefault(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := NewService(repo)
	wt, err := svc.Ensure(context.Background(), "Ücretsiz Bakım", decimal.Zero)
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if wt.DefaultPrice.Valid {
		t.Error("zero seed price must leave the default null")
	}
}

func TestImportDefaults(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := NewService(repo)

	n, err := svc.ImportDefaults(context.Background())
	if err != nil {
		t.Fatalf("ImportDefaults error: %v", err)
	}
	if n != len(DefaultPriceList) {
		t.Errorf("imported %d, want %d", n, len(DefaultPriceList))
	}

	ring, err := repo.FindByName(context.Background(), "ZİNCİR YALDIZ")
	if err != nil {
		t.Fatal("expected range-priced entry to exist")
	}
	if !ring.DefaultPrice.Valid || !ring.DefaultPrice.Decimal.Equal(decimal.NewFromInt(150)) {
		t.Errorf("range price seeded %+v, want 150", ring.DefaultPrice)
	}

	gram, err := repo.FindByName(context.Background(), "PARÇALI BÜYÜME")
	if err != nil {
		t.Fatal("expected gram-priced entry to exist")
	}
	if gram.DefaultPrice.Valid {
		t.Error("gram-plus-labor entries must import with a null default")
	}

	// importing twice must not duplicate rows
	if _, err := svc.ImportDefaults(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(repo.workTypes) != len(DefaultPriceList) {
		t.Errorf("re-import grew the list to %d rows", len(repo.workTypes))
	}
}

func TestDeactivateKeepsRow(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := NewService(repo)
	wt, _ := svc.Ensure(context.Background(), "LAZER KAYNAK", decimal.NewFromInt(150))

	if err := svc.Deactivate(context.Background(), wt.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	active, _ := svc.List(context.Background(), true)
	if len(active) != 0 {
		t.Error("deactivated entries must not list as active")
	}
	all, _ := svc.List(context.Background(), false)
	if len(all) != 1 {
		t.Error("deactivation must not delete the row")
	}
}
