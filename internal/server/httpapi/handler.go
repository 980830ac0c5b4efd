package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/statements"
	"github.com/dmitrijs2005/finledger/internal/server/users"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type statementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

type statementResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	OperationType string          `json:"operation_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

type balanceResponse struct {
	Statements []statementResponse `json:"statements"`
	Balance    decimal.Decimal     `json:"balance"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toStatementResponse(st *statements.Statement) statementResponse {
	return statementResponse{
		ID:            st.ID,
		UserID:        st.UserID,
		OperationType: string(st.OperationType),
		Amount:        st.Amount,
		Description:   st.Description,
		CreatedAt:     st.CreatedAt,
	}
}

// statusForError translates the sentinel taxonomy into HTTP statuses.
// Every error is surfaced verbatim by the services; nothing is retried here.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrorInvalidInput),
		errors.Is(err, common.ErrorInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *HTTPServer) fail(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, common.ErrorInvalidInput)
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "email", user.Email)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *HTTPServer) createSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, common.ErrorInvalidInput)
		return
	}

	result, err := s.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{UserID: result.UserID, AccessToken: result.AccessToken})
}

func (s *HTTPServer) profile(c *gin.Context) {
	user, err := s.users.GetProfile(c.Request.Context(), assertedUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *HTTPServer) createStatement(c *gin.Context, opType statements.OperationType) {
	var req statementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, common.ErrorInvalidInput)
		return
	}

	st, err := s.statements.CreateStatement(c.Request.Context(), assertedUserID(c), opType, req.Amount, req.Description)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toStatementResponse(st))
}

func (s *HTTPServer) deposit(c *gin.Context) {
	s.createStatement(c, statements.OperationDeposit)
}

func (s *HTTPServer) withdraw(c *gin.Context) {
	s.createStatement(c, statements.OperationWithdraw)
}

func (s *HTTPServer) balance(c *gin.Context) {
	b, err := s.statements.GetBalance(c.Request.Context(), assertedUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := balanceResponse{
		Statements: make([]statementResponse, 0, len(b.Statements)),
		Balance:    b.Balance,
	}
	for _, st := range b.Statements {
		resp.Statements = append(resp.Statements, toStatementResponse(st))
	}

	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) statement(c *gin.Context) {
	st, err := s.statements.GetStatementOperation(c.Request.Context(), assertedUserID(c), c.Param("statement_id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toStatementResponse(st))
}
