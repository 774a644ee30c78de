package ordercontroller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func deleteOrder(t *testing.T, db *gorm.DB, orderID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.DELETE("/admin/orders/:orderID", DeleteOrderHandler(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/orders/"+orderID, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteOrder(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "order_items"`).WithArgs("42").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "orders"`).WithArgs("42").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := deleteOrder(t, db, "42")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderUnknownIDIs404(t *testing.T) {
	db, mock := mockDB(t)

	// No order row deleted: the whole transaction rolls back and the
	// handler must not claim success.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "order_items"`).WithArgs("999").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "orders"`).WithArgs("999").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	w := deleteOrder(t, db, "999")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
