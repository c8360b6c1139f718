package habit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var habitColumns = []string{
	"id", "title", "description", "time", "created_at", "updated_at", "completed", "completed_at",
}

func newMockRepository(t *testing.T) (*DBHabitRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBHabitRepository(sqlx.NewDb(db, "sqlite")), mock
}

func TestDBHabitRepository_FindAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	done := time.Date(2025, 1, 1, 7, 2, 0, 0, time.UTC)

	rows := sqlmock.NewRows(habitColumns).
		AddRow(1, "Run", "5k", "07:00", now, now, true, done).
		AddRow(2, "Read", "", "19:00", now, now, false, nil)
	mock.ExpectQuery("SELECT .+ FROM habits h LEFT JOIN checkmarks c ON c.habit_id = h.id AND c.date = \\? ORDER BY h.id").
		WithArgs("2025-01-01").
		WillReturnRows(rows)

	got, err := repo.FindAll(context.Background(), "2025-01-01")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Run", got[0].Title)
	assert.Equal(t, MustClockTime("07:00"), got[0].Time)
	assert.True(t, got[0].Completed)
	require.NotNil(t, got[0].CompletedAt)
	assert.Equal(t, done, *got[0].CompletedAt)

	assert.Equal(t, "Read", got[1].Title)
	assert.False(t, got[1].Completed)
	assert.Nil(t, got[1].CompletedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBHabitRepository_FindAll_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT .+ FROM habits h").
		WithArgs("2025-01-01").
		WillReturnRows(sqlmock.NewRows(habitColumns))

	got, err := repo.FindAll(context.Background(), "2025-01-01")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBHabitRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Habit
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM habits h .+ WHERE h.id = \\?").
					WithArgs("2025-01-01", int64(3)).
					WillReturnRows(sqlmock.NewRows(habitColumns).
						AddRow(3, "Stretch", "", "12:30", now, now, false, nil))
			},
			want: &Habit{
				ID:        3,
				Title:     "Stretch",
				Time:      MustClockTime("12:30"),
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM habits h .+ WHERE h.id = \\?").
					WithArgs("2025-01-01", int64(3)).
					WillReturnRows(sqlmock.NewRows(habitColumns))
			},
			want: nil,
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM habits h").
					WillReturnError(fmt.Errorf("connection lost"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByID(context.Background(), 3, "2025-01-01")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBHabitRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	h := &Habit{Title: "Meditate", Description: "10 minutes", Time: MustClockTime("06:00"), CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO habits \\(title, description, time, created_at, updated_at\\)").
		WithArgs("Meditate", "10 minutes", "06:00", now, now).
		WillReturnResult(sqlmock.NewResult(7, 1))

	require.NoError(t, repo.Create(context.Background(), h))
	assert.Equal(t, int64(7), h.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBHabitRepository_Update(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	h := &Habit{ID: 7, Title: "Meditate", Time: MustClockTime("06:15"), UpdatedAt: now}

	mock.ExpectExec("UPDATE habits SET title = \\?, description = \\?, time = \\?, updated_at = \\? WHERE id = \\?").
		WithArgs("Meditate", "", "06:15", now, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), h))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBHabitRepository_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "deletes checkmarks then habit",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM checkmarks WHERE habit_id = \\?").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 4))
				mock.ExpectExec("DELETE FROM habits WHERE id = \\?").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rolls back when habit delete fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM checkmarks WHERE habit_id = \\?").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("DELETE FROM habits WHERE id = \\?").
					WithArgs(int64(7)).
					WillReturnError(fmt.Errorf("locked"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.Delete(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBHabitRepository_Mark(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)
	earlier := time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)
	checkmarkColumns := []string{"id", "habit_id", "date", "completed", "completed_at"}
	yes, no := true, false

	tests := []struct {
		name      string
		completed *bool
		setupMock func(mock sqlmock.Sqlmock)
		want      *Checkmark
	}{
		{
			name: "toggle without checkmark inserts completed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id, habit_id, date, completed, completed_at FROM checkmarks WHERE habit_id = \\? AND date = \\?").
					WithArgs(int64(1), "2025-01-01").
					WillReturnRows(sqlmock.NewRows(checkmarkColumns))
				mock.ExpectExec("INSERT INTO checkmarks").
					WithArgs(int64(1), "2025-01-01", true, at).
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectCommit()
			},
			want: &Checkmark{ID: 11, HabitID: 1, Date: "2025-01-01", Completed: true, CompletedAt: &at},
		},
		{
			name: "toggle completed checkmark clears it",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .+ FROM checkmarks").
					WithArgs(int64(1), "2025-01-01").
					WillReturnRows(sqlmock.NewRows(checkmarkColumns).AddRow(11, 1, "2025-01-01", true, earlier))
				mock.ExpectExec("UPDATE checkmarks SET completed = \\?, completed_at = \\? WHERE id = \\?").
					WithArgs(false, nil, int64(11)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			want: &Checkmark{ID: 11, HabitID: 1, Date: "2025-01-01"},
		},
		{
			name:      "explicit value overwrites existing state",
			completed: &yes,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .+ FROM checkmarks").
					WithArgs(int64(1), "2025-01-01").
					WillReturnRows(sqlmock.NewRows(checkmarkColumns).AddRow(11, 1, "2025-01-01", true, earlier))
				mock.ExpectExec("UPDATE checkmarks").
					WithArgs(true, at, int64(11)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			want: &Checkmark{ID: 11, HabitID: 1, Date: "2025-01-01", Completed: true, CompletedAt: &at},
		},
		{
			name:      "explicit false without checkmark inserts cleared row",
			completed: &no,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .+ FROM checkmarks").
					WithArgs(int64(1), "2025-01-01").
					WillReturnRows(sqlmock.NewRows(checkmarkColumns))
				mock.ExpectExec("INSERT INTO checkmarks").
					WithArgs(int64(1), "2025-01-01", false, nil).
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectCommit()
			},
			want: &Checkmark{ID: 12, HabitID: 1, Date: "2025-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.Mark(context.Background(), 1, "2025-01-01", tt.completed, at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBHabitRepository_Mark_RollsBackOnError(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM checkmarks").
		WillReturnError(fmt.Errorf("disk I/O error"))
	mock.ExpectRollback()

	got, err := repo.Mark(context.Background(), 1, "2025-01-01", nil, time.Now())
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBHabitRepository_DeleteByDate(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("DELETE FROM checkmarks WHERE date = \\?").
		WithArgs("2025-01-01").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteByDate(context.Background(), "2025-01-01"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBHabitRepository_FindCompleted(t *testing.T) {
	repo, mock := newMockRepository(t)
	done := time.Date(2025, 1, 1, 7, 2, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT h.id, h.title, h.time, c.completed_at FROM checkmarks c JOIN habits h ON h.id = c.habit_id WHERE c.date = \\? AND c.completed = \\? ORDER BY h.id").
		WithArgs("2025-01-01", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "time", "completed_at"}).
			AddRow(1, "Run", "07:00", done))

	got, err := repo.FindCompleted(context.Background(), "2025-01-01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, CompletedHabit{ID: 1, Title: "Run", Time: MustClockTime("07:00"), CompletedAt: &done}, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
