package handler

import (
	"net/http"
	"net/url"
	"testing"

	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	mockUsecase "adminpanel/internal/mocks/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type adminFixture struct {
	e       *echo.Echo
	flasher *view.Flasher
	adminUC *mockUsecase.MockAdminUsecase
}

func newAdminFixture(t *testing.T) *adminFixture {
	f := &adminFixture{
		flasher: newTestFlasher(t),
		adminUC: mockUsecase.NewMockAdminUsecase(t),
	}
	f.e = newTestEcho(t, f.flasher, newTestOperator())

	h := NewAdminHandler(AdminHandlerParams{AdminUC: f.adminUC, Flasher: f.flasher, Logger: newDiscardLogger()})
	f.e.GET("/admins", h.List)
	f.e.GET("/admins/new", h.New)
	f.e.POST("/admins", h.Create)
	f.e.GET("/admins/:id/edit", h.Edit)
	f.e.POST("/admins/:id", h.Update)
	f.e.POST("/admins/:id/delete", h.Delete)

	return f
}

func TestAdminHandler_List(t *testing.T) {
	f := newAdminFixture(t)
	other := primitive.NewObjectID()
	f.adminUC.EXPECT().List(mock.Anything).Return([]entity.Admin{
		{ID: operatorID, FullName: "Aziza Karimova", PhoneNumber: "+998901234567", Role: entity.RoleSuperAdmin},
		{ID: other, FullName: "Bobur Aliyev", PhoneNumber: "+998911112233", Role: entity.RoleAdmin},
	}, nil).Once()

	rec := doGet(f.e, "/admins")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bobur Aliyev")
	assert.Contains(t, body, "/admins/"+other.Hex()+"/delete")
	assert.NotContains(t, body, "/admins/"+operatorID.Hex()+"/delete")
}

func TestAdminHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newAdminFixture(t)
		f.adminUC.EXPECT().
			Submit(mock.Anything, "", form.Admin{FullName: "Bobur Aliyev", PhoneNumber: "+998 91 111 22 33", Password: "secret1"}).
			Return(&entity.Admin{}, nil).
			Once()

		rec := doPostForm(f.e, "/admins", url.Values{
			"fullName":    {"Bobur Aliyev"},
			"phoneNumber": {"+998 91 111 22 33"},
			"password":    {"secret1"},
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admins", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []view.Flash{{Kind: view.FlashSuccess, Message: "Admin created"}}, followFlashes(f.flasher, rec))
	})

	t.Run("failure never echoes the password", func(t *testing.T) {
		f := newAdminFixture(t)
		f.adminUC.EXPECT().
			Submit(mock.Anything, "", mock.Anything).
			Return(nil, domainerrors.NewAPIError(http.StatusConflict, "Phone number already registered")).
			Once()

		rec := doPostForm(f.e, "/admins", url.Values{
			"fullName":    {"Bobur Aliyev"},
			"phoneNumber": {"+998911112233"},
			"password":    {"hunter22"},
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Phone number already registered")
		assert.Contains(t, rec.Body.String(), `value="Bobur Aliyev"`)
		assert.NotContains(t, rec.Body.String(), "hunter22")
	})
}

func TestAdminHandler_Edit(t *testing.T) {
	f := newAdminFixture(t)
	id := primitive.NewObjectID()
	f.adminUC.EXPECT().Get(mock.Anything, id.Hex()).
		Return(&entity.Admin{ID: id, FullName: "Bobur Aliyev", PhoneNumber: "+998911112233"}, nil).
		Once()

	rec := doGet(f.e, "/admins/"+id.Hex()+"/edit")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Bobur Aliyev"`)
}

func TestAdminHandler_Delete(t *testing.T) {
	t.Run("refuses the signed-in operator", func(t *testing.T) {
		f := newAdminFixture(t)

		rec := doPostForm(f.e, "/admins/"+operatorID.Hex()+"/delete", nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, []view.Flash{{Kind: view.FlashError, Message: "You cannot delete your own account"}}, followFlashes(f.flasher, rec))
	})

	t.Run("deletes another admin", func(t *testing.T) {
		f := newAdminFixture(t)
		id := primitive.NewObjectID().Hex()
		f.adminUC.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

		rec := doPostForm(f.e, "/admins/"+id+"/delete", nil)

		assert.Equal(t, "/admins", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []view.Flash{{Kind: view.FlashSuccess, Message: "Admin deleted"}}, followFlashes(f.flasher, rec))
	})

	t.Run("ended session goes to login", func(t *testing.T) {
		f := newAdminFixture(t)
		id := primitive.NewObjectID().Hex()
		f.adminUC.EXPECT().Delete(mock.Anything, id).Return(domainerrors.NewAPIError(http.StatusUnauthorized, "")).Once()

		rec := doPostForm(f.e, "/admins/"+id+"/delete", nil)

		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})
}
