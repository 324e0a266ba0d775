package handler

import (
	"errors"
	"net/http"
	"reflect"

	"plastgest/internal/apierror"
	"plastgest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps workflow errors onto HTTP statuses. Anything not in the
// taxonomy is attached to the context for the error handler middleware, which
// logs it and answers with a generic 500.
func respondError(c *gin.Context, err error) {
	var (
		naoEncontrado *service.NaoEncontradoError
		insuficiente  *service.EstoqueInsuficienteError
		receitaInv    *service.ReceitaInvalidaError
		itemInv       *service.ItemVendaInvalidoError
		requisicaoInv *service.RequisicaoInvalidaError
		conflito      *service.ConflitoError
	)
	switch {
	case errors.As(err, &naoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &insuficiente),
		errors.As(err, &receitaInv),
		errors.As(err, &itemInv),
		errors.As(err, &requisicaoInv),
		errors.Is(err, service.ErrSemReceita),
		errors.Is(err, service.ErrReceitaVazia),
		errors.Is(err, service.ErrCPFDuplicado):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.As(err, &conflito):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCredenciaisInvalidas),
		errors.Is(err, service.ErrTokenInvalido):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.Is(err, service.ErrRefreshInvalido),
		errors.Is(err, service.ErrAcessoNegado):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
