package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"party-manager-api/internal/application/ports"
	"party-manager-api/internal/domain/sentinel"
	"party-manager-api/internal/infrastructure/jwt"
	"party-manager-api/internal/interface/api/rest/dto/apierror"
	"party-manager-api/internal/interface/api/rest/dto/person"
	"party-manager-api/internal/interface/api/rest/middleware"
	"party-manager-api/internal/interface/api/rest/validator"
)

const (
	msgNotFound      = "Person not found"
	msgInvalidBody   = "invalid request body"
	msgDuplicate     = "Email already exists"
	msgIntegrity     = "Database integrity constraint violated"
	msgInternalError = "internal server error"
)

type PersonController struct {
	personService ports.PersonService
	logger        *zap.Logger
}

// NewPersonController registers the people routes on r. Writes require a
// bearer token only when jwtService is not nil.
func NewPersonController(
	r *gin.Engine,
	personService ports.PersonService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PersonController {
	pc := &PersonController{
		personService: personService,
		logger:        logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	for _, route := range []string{RoutePeople, RoutePeople + "/"} {
		r.GET(route, pc.GetPeopleHandler)
		r.POST(route, auth, pc.CreatePersonHandler)
	}
	r.GET(RoutePerson, pc.GetPersonHandler)
	r.PATCH(RoutePerson, auth, pc.UpdatePersonHandler)
	r.DELETE(RoutePerson, auth, pc.DeletePersonHandler)

	return pc
}

func (pc *PersonController) GetPeopleHandler(c *gin.Context) {
	skip, limit, errs := validator.ValidatePaging(c.Query("skip"), c.Query("limit"))
	if len(errs) > 0 {
		writeError(c, http.StatusBadRequest, apierror.KindValidation, "invalid query parameters", errs...)
		return
	}

	people, err := pc.personService.FindPeople(c.Request.Context(), skip, limit)
	if err != nil {
		pc.internalError(c, "FindPeople() error", err)
		return
	}

	c.JSON(http.StatusOK, person.ToResponsePeople(people))
}

func (pc *PersonController) GetPersonHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("person_id"))
	if !ok {
		writeError(c, http.StatusNotFound, apierror.KindNotFound, msgNotFound)
		return
	}

	p, err := pc.personService.FindPersonByID(c.Request.Context(), id)
	if err != nil {
		pc.internalError(c, "FindPersonByID() error", err)
		return
	}
	if p == nil {
		writeError(c, http.StatusNotFound, apierror.KindNotFound, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, person.ToResponsePerson(*p))
}

func (pc *PersonController) CreatePersonHandler(c *gin.Context) {
	var req person.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierror.KindValidation, msgInvalidBody, bodyDetail(err))
		return
	}
	if errs := validator.ValidateCreate(req); len(errs) > 0 {
		writeError(c, http.StatusBadRequest, apierror.KindValidation, msgInvalidBody, errs...)
		return
	}

	pDomain, err := person.ToDomainPerson(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierror.KindValidation, msgInvalidBody, bodyDetail(err))
		return
	}

	p, err := pc.personService.CreatePerson(c.Request.Context(), pDomain)
	switch {
	case errors.Is(err, sentinel.ErrDuplicateEmail):
		writeError(c, http.StatusConflict, apierror.KindDuplicate, msgDuplicate,
			apierror.Detail{Field: "email", Message: msgDuplicate, Code: apierror.CodeDuplicate})
		return
	case errors.Is(err, sentinel.ErrIntegrityViolation):
		writeError(c, http.StatusConflict, apierror.KindDatabase, msgIntegrity)
		return
	case err != nil:
		pc.internalError(c, "CreatePerson() error", err)
		return
	}

	c.JSON(http.StatusCreated, person.ToResponsePerson(*p))
}

func (pc *PersonController) UpdatePersonHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("person_id"))
	if !ok {
		writeError(c, http.StatusNotFound, apierror.KindNotFound, msgNotFound)
		return
	}

	var req person.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierror.KindValidation, msgInvalidBody, bodyDetail(err))
		return
	}
	if errs := validator.ValidateUpdate(req); len(errs) > 0 {
		writeError(c, http.StatusBadRequest, apierror.KindValidation, msgInvalidBody, errs...)
		return
	}

	patch, err := person.ToDomainPatch(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierror.KindValidation, msgInvalidBody, bodyDetail(err))
		return
	}

	p, err := pc.personService.UpdatePerson(c.Request.Context(), id, patch)
	switch {
	case errors.Is(err, sentinel.ErrDuplicateEmail):
		writeError(c, http.StatusBadRequest, apierror.KindValidation, msgDuplicate,
			apierror.Detail{Field: "email", Message: msgDuplicate, Code: apierror.CodeDuplicate})
		return
	case errors.Is(err, sentinel.ErrIntegrityViolation):
		writeError(c, http.StatusConflict, apierror.KindDatabase, msgIntegrity)
		return
	case err != nil:
		pc.internalError(c, "UpdatePerson() error", err)
		return
	}
	if p == nil {
		writeError(c, http.StatusNotFound, apierror.KindNotFound, msgNotFound)
		return
	}

	c.JSON(http.StatusOK, person.ToResponsePerson(*p))
}

func (pc *PersonController) DeletePersonHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("person_id"))
	if !ok {
		writeError(c, http.StatusNotFound, apierror.KindNotFound, msgNotFound)
		return
	}

	found, err := pc.personService.DeletePerson(c.Request.Context(), id)
	if err != nil {
		pc.internalError(c, "DeletePerson() error", err)
		return
	}
	if !found {
		writeError(c, http.StatusNotFound, apierror.KindNotFound, msgNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PersonController) internalError(c *gin.Context, msg string, err error) {
	pc.logger.Error(msg, zap.Error(err))
	writeError(c, http.StatusInternalServerError, apierror.KindInternal, msgInternalError)
}

func writeError(c *gin.Context, status int, kind, msg string, details ...apierror.Detail) {
	c.JSON(status, apierror.New(status, kind, msg, details...))
}

func bodyDetail(err error) apierror.Detail {
	return apierror.Detail{Message: err.Error(), Code: apierror.CodeInvalidFormat}
}
