package note

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

var noteColumns = []string{"id", "content", "created_at", "updated_at"}

func newMockRepository(t *testing.T) (*DBNoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBNoteRepository(sqlx.NewDb(db, "sqlite")), mock
}

func TestDBNoteRepository_FindAll(t *testing.T) {
	repo, mock := newMockRepository(t)
	first := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2025, 1, 2, 21, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, content, created_at, updated_at FROM notes ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(2, "slept badly", second, second).
			AddRow(1, "great run", first, first))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Note{ID: 2, Content: "slept badly", CreatedAt: second, UpdatedAt: second}, got[0])
	assert.Equal(t, int64(1), got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBNoteRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Note
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM notes WHERE id = \\?").
					WithArgs(int64(4)).
					WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(4, "hello", now, now))
			},
			want: &Note{ID: 4, Content: "hello", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM notes WHERE id = \\?").
					WithArgs(int64(4)).
					WillReturnRows(sqlmock.NewRows(noteColumns))
			},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .+ FROM notes WHERE id = \\?").
					WillReturnError(fmt.Errorf("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByID(context.Background(), 4)
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

func TestDBNoteRepository_FindCreatedBetween(t *testing.T) {
	repo, mock := newMockRepository(t)
	loc := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	created := time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM notes WHERE created_at >= \\? AND created_at < \\? ORDER BY created_at, id").
		WithArgs(start.UTC(), end.UTC()).
		WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(1, "late note", created, created))

	got, err := repo.FindCreatedBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "late note", got[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBNoteRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	n := &Note{Content: "drink water", CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO notes \\(content, created_at, updated_at\\) VALUES \\(\\?, \\?, \\?\\)").
		WithArgs("drink water", now, now).
		WillReturnResult(sqlmock.NewResult(9, 1))

	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, int64(9), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBNoteRepository_Create_Error(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("INSERT INTO notes").WillReturnError(fmt.Errorf("disk full"))

	err := repo.Create(context.Background(), &Note{Content: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBNoteRepository_Update(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE notes SET content = \\?, updated_at = \\? WHERE id = \\?").
		WithArgs("edited", now, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), &Note{ID: 9, Content: "edited", UpdatedAt: now}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBNoteRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("DELETE FROM notes WHERE id = \\?").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
