package middleware

//  configuration for request limits
type Limits struct {
	MaxMessageSize    int
	MaxBatchSize      int
	MaxClients        int
	MessagesPerSecond float64
	BurstSize         int
}

// NewLimits: creates a new Limits configuration
func NewLimits(maxMessageSize, maxBatchSize, maxClients int, messagesPerSecond float64, burstSize int) *Limits {
	return &Limits{
		MaxMessageSize:    maxMessageSize,
		MaxBatchSize:      maxBatchSize,
		MaxClients:        maxClients,
		MessagesPerSecond: messagesPerSecond,
		BurstSize:         burstSize,
	}
}

// ClientCounter interface for counting connections (avoids import cycle with client)
type ClientCounter interface {
	Count() int
}

// CanAcceptClient: checks if the server has room for another connection
func (l *Limits) CanAcceptClient(counter ClientCounter) bool {
	return counter.Count() < l.MaxClients
}

// ValidateMessageSize: checks if a message is within the size limit
func (l *Limits) ValidateMessageSize(msgSize int) bool {
	return msgSize <= l.MaxMessageSize
}

// ValidateBatchSize: checks if a request asks for too many icons at once
func (l *Limits) ValidateBatchSize(count int) bool {
	return count <= l.MaxBatchSize
}
