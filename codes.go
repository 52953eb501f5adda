package errnotify

// StatusNetworkError is the status reported when no HTTP response was
// received at all (connection refused, DNS failure, aborted request).
const StatusNetworkError = 0

// FallbackMessage is shown for every status without a dedicated message.
const FallbackMessage = "Ocorreu um erro inesperado"

var messages = map[int]string{
	StatusNetworkError: "Erro de rede - Não foi possível se conectar ao servidor.",
	401:                "Não autorizado. Faça login novamente.",
	403:                "Acesso proibido. Você não tem permissão para esta ação.",
	404:                "O recurso solicitado não foi encontrado.",
	500:                "Erro no servidor. Tente novamente mais tarde.",
}

// Message returns the human-readable message for an HTTP status code.
// Codes without a dedicated entry (including negative or non-standard
// values) yield FallbackMessage.
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return FallbackMessage
}

// Messages returns a copy of the status-to-message table.
func Messages() map[int]string {
	out := make(map[int]string, len(messages))
	for status, msg := range messages {
		out[status] = msg
	}
	return out
}
