package impl

import (
	"context"
	"testing"

	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	mockService "adminpanel/internal/mocks/service"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAdminService(t *testing.T) (*mockService.MockAdminAPI, usecase.AdminUsecase) {
	t.Helper()

	api := mockService.NewMockAdminAPI(t)

	return api, NewAdminService(AdminServiceParams{
		API:       api,
		Validator: newTestValidator(),
		Logger:    newDiscardLogger(),
	})
}

func TestAdminService_Submit_CreateRequiresPassword(t *testing.T) {
	api, srv := newAdminService(t)

	_, err := srv.Submit(context.Background(), "", form.Admin{FullName: "Jasur", PhoneNumber: "+998901112233"})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "password")
	api.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything)
}

func TestAdminService_Submit_CreateNormalizesPhone(t *testing.T) {
	api, srv := newAdminService(t)

	password := "secret123"
	api.EXPECT().
		CreateAdmin(mock.Anything, service.AdminRequest{
			FullName:    "Jasur Toshmatov",
			PhoneNumber: "+998901112233",
			Password:    &password,
		}).
		Return(&entity.Admin{ID: primitive.NewObjectID()}, nil).
		Once()

	_, err := srv.Submit(context.Background(), "", form.Admin{
		FullName:    " Jasur Toshmatov ",
		PhoneNumber: "+998 (90) 111-22-33",
		Password:    password,
	})
	require.NoError(t, err)
}

func TestAdminService_Submit_UpdateWithoutPasswordOmitsIt(t *testing.T) {
	api, srv := newAdminService(t)
	id := primitive.NewObjectID()

	api.EXPECT().
		UpdateAdmin(mock.Anything, id, mock.MatchedBy(func(req service.AdminRequest) bool {
			return req.Password == nil && req.FullName == "Jasur"
		})).
		Return(&entity.Admin{ID: id, FullName: "Jasur"}, nil).
		Once()

	admin, err := srv.Submit(context.Background(), id.Hex(), form.Admin{FullName: "Jasur", PhoneNumber: "901112233"})
	require.NoError(t, err)
	assert.Equal(t, id, admin.ID)
}

func TestAdminService_Submit_MissingPhone(t *testing.T) {
	_, srv := newAdminService(t)

	_, err := srv.Submit(context.Background(), primitive.NewObjectID().Hex(), form.Admin{FullName: "Jasur", PhoneNumber: "  "})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "phoneNumber")
}

func TestAdminService_Submit_ForeignPhoneSentAsTyped(t *testing.T) {
	api, srv := newAdminService(t)
	id := primitive.NewObjectID()

	api.EXPECT().
		UpdateAdmin(mock.Anything, id, service.AdminRequest{FullName: "Jasur", PhoneNumber: "+1 415 555 0100"}).
		Return(&entity.Admin{ID: id, FullName: "Jasur"}, nil).
		Once()

	_, err := srv.Submit(context.Background(), id.Hex(), form.Admin{FullName: "Jasur", PhoneNumber: " +1 415 555 0100 "})
	require.NoError(t, err)
}

func TestAdminService_GetAndDelete(t *testing.T) {
	api, srv := newAdminService(t)
	id := primitive.NewObjectID()

	_, err := srv.Get(context.Background(), "zzz")
	require.ErrorIs(t, err, domainerrors.ErrInvalidID)

	api.EXPECT().GetAdmin(mock.Anything, id).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = srv.Get(context.Background(), id.Hex())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	api.EXPECT().DeleteAdmin(mock.Anything, id).Return(nil).Once()
	require.NoError(t, srv.Delete(context.Background(), id.Hex()))
}
