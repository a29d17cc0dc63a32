package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrRespuestaInvalida indica resposta 2xx fora do contrato canônico
var ErrRespuestaInvalida = errors.New("resposta fora do contrato da API do torneio")

// RequestError carrega o status HTTP e a mensagem que o servidor devolveu
// em uma resposta não-2xx.
type RequestError struct {
	Status  int
	Message string
	Body    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("torneo: HTTP %d: %s", e.Status, e.Message)
}

// extractMessage tenta extrair error/message de um corpo JSON de erro;
// se não der, devolve o corpo cru.
func extractMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}
