// ABOUTME: Tests for the in-memory store.
// ABOUTME: Checks that filters, upserts, and injected failures behave like the SQL store.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SoftClearAndNullSemantics(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Insert(ctx, "outreach_messages", []Row{
		{"id": "inbox-1", "channel": "sms", "campaign_type": nil},
		{"id": "camp-1", "channel": "email", "campaign_type": "recall"},
		{"id": "camp-2", "channel": "sms", "campaign_type": "birthday"},
	})
	require.NoError(t, err)

	n, err := m.Delete(ctx, "outreach_messages", SoftClear(NotNull("campaign_type")))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	left := m.Rows("outreach_messages")
	require.Len(t, left, 1)
	assert.Equal(t, "inbox-1", left[0]["id"])

	// A NULL column never satisfies = or <>.
	got, err := m.Select(ctx, "outreach_messages", []string{"id"}, Filter{Neq("campaign_type", "recall")}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemory_UpsertMergesOnConflictKey(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Upsert(ctx, "insurance_policies", []Row{{"id": "p1", "policy_number": "GL-1", "status": "active"}}, "policy_number")
	require.NoError(t, err)
	_, err = m.Upsert(ctx, "insurance_policies", []Row{{"id": "p2", "policy_number": "GL-1", "status": "expired"}}, "policy_number")
	require.NoError(t, err)

	rows := m.Rows("insurance_policies")
	require.Len(t, rows, 1)
	assert.Equal(t, "expired", rows[0]["status"])
	assert.Equal(t, "p2", rows[0]["id"])
}

func TestMemory_NormalizesValues(t *testing.T) {
	m := NewMemory()
	var at *time.Time
	_, err := m.Insert(context.Background(), "patients", []Row{{"id": "p", "tags": []string{"vip"}, "deleted_at": at}})
	require.NoError(t, err)

	row := m.Rows("patients")[0]
	assert.Equal(t, `["vip"]`, row["tags"])
	assert.Nil(t, row["deleted_at"])
}

func TestMemory_FailHookAndCancellation(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.Fail = func(table string, rows []Row) error {
		if table == "calls" {
			return boom
		}
		return nil
	}

	_, err := m.Insert(context.Background(), "calls", []Row{{"id": "a"}})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, m.Count("calls"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Insert(ctx, "licenses", []Row{{"id": "l"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemory_SelectLimit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_, err := m.Insert(ctx, "patients", []Row{{"id": id}})
		require.NoError(t, err)
	}
	got, err := m.Select(ctx, "patients", []string{"id"}, nil, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
