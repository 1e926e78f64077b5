package technician

import (
	"context"
	"encoding/json"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homefix/database"
	"homefix/database/repository"
	"homefix/models"
)

func newTestService(t *testing.T) *DefaultTechnicianService {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDefaultTechnicianService(repository.NewStore(db), zap.NewNop())
}

func TestRegisterTechnician(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var input models.TechnicianInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": " Ravi Kumar ",
		"phone": "9800000001",
		"areas": " 110001, ,110002 ",
		"services": ["ac_clean", " geyser "],
		"owner_name": "Kumar Services"
	}`), &input))

	id, err := svc.RegisterTechnician(ctx, input)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^T-[0-9a-f]{12}$`), id)

	techs, err := svc.ListTechnicians(ctx)
	require.NoError(t, err)
	require.Len(t, techs, 1)
	assert.Equal(t, "Ravi Kumar", techs[0].Name)
	assert.Equal(t, "110001,110002", techs[0].AreasCSV)
	assert.Equal(t, "ac_clean,geyser", techs[0].ServicesCSV)
	assert.Equal(t, "Kumar Services", techs[0].OwnerName)
}

func TestRegisterTechnicianRequiresNameAndPhone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterTechnician(ctx, models.TechnicianInput{Name: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Equal(t, "Missing fields: name, phone", err.Error())

	techs, err := svc.ListTechnicians(ctx)
	require.NoError(t, err)
	assert.Empty(t, techs)
}

func TestListTechniciansNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time {
		now = now.Add(time.Minute)
		return now
	}

	first, err := svc.RegisterTechnician(ctx, models.TechnicianInput{Name: "A", Phone: "1"})
	require.NoError(t, err)
	second, err := svc.RegisterTechnician(ctx, models.TechnicianInput{Name: "B", Phone: "2"})
	require.NoError(t, err)

	techs, err := svc.ListTechnicians(ctx)
	require.NoError(t, err)
	require.Len(t, techs, 2)
	assert.Equal(t, second, techs[0].ID)
	assert.Equal(t, first, techs[1].ID)
}
