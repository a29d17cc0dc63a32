package actions

import "context"

// Dialogs é a abstração não-bloqueante de confirmação/prompt: o resultado
// volta pelo mesmo mecanismo assíncrono das chamadas de rede, então o
// refresh silencioso nunca fica travado atrás de um diálogo.
type Dialogs interface {
	// Confirm pergunta sim/não; ok=false significa cancelado
	Confirm(ctx context.Context, message string) (ok bool, err error)
	// Prompt pede um valor; ok=false significa cancelado (nenhuma chamada sai)
	Prompt(ctx context.Context, message, initial string) (value string, ok bool, err error)
}

// AutoConfirm resolve diálogos já decididos pela camada web: a página envia
// a confirmação/valor junto com a ação, então aqui só é repassado.
type AutoConfirm struct {
	Accepted bool
	Value    string
}

func (a AutoConfirm) Confirm(context.Context, string) (bool, error) {
	return a.Accepted, nil
}

func (a AutoConfirm) Prompt(context.Context, string, string) (string, bool, error) {
	return a.Value, a.Accepted, nil
}
