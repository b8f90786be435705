package domain

// ConnState — состояние подключения к Supabase, вычисляется один раз при старте.
// Значение фиксируется до регистрации маршрутов, поэтому промежуточного
// "not-initialized" снаружи не видно.
type ConnState string

const (
	ConnStateConnected   ConnState = "connected"
	ConnStateConfigError ConnState = "error-config"
)
