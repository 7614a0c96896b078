package vo

type MessageResponseVO struct {
	Message string `json:"message"`
}

func Message(msg string) MessageResponseVO {
	return MessageResponseVO{Message: msg}
}
