package server

import (
	"net/http"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/labstack/echo/v4"

	"github.com/smallyu/hash-storage-go/pkg/cryptoerr"
)

// OperationRequest carries the arguments of every operation. Each endpoint
// reads only the fields it needs.
type OperationRequest struct {
	Secret     string `json:"secret"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Body       string `json:"body"`
	Block      string `json:"block"`
	Key        string `json:"key"`
	Signature  string `json:"signature"`
}

type ResultResponse struct {
	Result interface{} `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

const kindRequest = "ErrRequest"

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{Status: "ok", Version: versioninfo.Short()})
}

type operation func(req *OperationRequest) (interface{}, error)

// handle binds the request body, runs fn and maps its error kind to a
// status code.
func (srv *Server) handle(op string, fn operation) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		defer func() {
			operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		}()

		var req OperationRequest
		if err := c.Bind(&req); err != nil {
			operationsTotal.WithLabelValues(op, kindRequest).Inc()
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: kindRequest})
		}

		result, err := fn(&req)
		if err != nil {
			kind := cryptoerr.KindOf(err)
			operationsTotal.WithLabelValues(op, kindLabel(kind)).Inc()
			srv.logger.WithField("op", op).WithError(err).Debug("operation failed")
			return c.JSON(statusCode(kind), ErrorResponse{Error: err.Error(), Kind: kindLabel(kind)})
		}

		operationsTotal.WithLabelValues(op, "ok").Inc()
		return c.JSON(http.StatusOK, ResultResponse{Result: result})
	}
}

func statusCode(kind cryptoerr.ErrorKind) int {
	switch kind {
	case cryptoerr.ErrDecode, cryptoerr.ErrFormat:
		return http.StatusBadRequest
	case cryptoerr.ErrCrypto:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func kindLabel(kind cryptoerr.ErrorKind) string {
	if kind == "" {
		return "ErrInternal"
	}
	return string(kind)
}

func (srv *Server) getPrivateKey(req *OperationRequest) (interface{}, error) {
	return srv.svc.GetPrivateKey(req.Secret)
}

func (srv *Server) getPublicKey(req *OperationRequest) (interface{}, error) {
	return srv.svc.GetPublicKey(req.PrivateKey)
}

func (srv *Server) checkKeys(req *OperationRequest) (interface{}, error) {
	return srv.svc.CheckKeys(req.PrivateKey, req.PublicKey)
}

func (srv *Server) encrypt(req *OperationRequest) (interface{}, error) {
	return srv.svc.Encrypt(req.PublicKey, req.Body)
}

func (srv *Server) decrypt(req *OperationRequest) (interface{}, error) {
	return srv.svc.Decrypt(req.PrivateKey, req.Block)
}

func (srv *Server) buildSignature(req *OperationRequest) (interface{}, error) {
	return srv.svc.BuildSignature(req.PrivateKey, req.Key, req.Block)
}

func (srv *Server) checkSignature(req *OperationRequest) (interface{}, error) {
	return srv.svc.CheckSignature(req.PublicKey, req.Key, req.Block, req.Signature)
}

func (srv *Server) buildSecretSignature(req *OperationRequest) (interface{}, error) {
	return srv.svc.BuildSecretSignature(req.PrivateKey, req.Secret)
}

func (srv *Server) checkSecretSignature(req *OperationRequest) (interface{}, error) {
	return srv.svc.CheckSecretSignature(req.PublicKey, req.Secret, req.Signature)
}
