package messenger

// Constants are the limits the messenger enforces.
type Constants struct {
	TextCount       uint64 `json:"textCount"`
	ConferenceLimit uint64 `json:"conferenceLimit"`
	MessagesLimit   uint64 `json:"messagesLimit"`
	UserLimit       uint64 `json:"userLimit"`
	TopicCount      uint64 `json:"topicCount"`
}

// Conference is a private conversation or a group.
type Conference struct {
	ID           uint64 `json:"id"`
	Topic        string `json:"topic"`
	TopicCustom  string `json:"topic_custom"`
	Count        uint64 `json:"count"`
	Group        bool   `json:"group"`
	TimestampEnd string `json:"timestamp_end"`
	Read         bool   `json:"read"`
	ReadCount    uint64 `json:"read_count"`
	ReadMID      uint64 `json:"read_mid"`
	Image        string `json:"image"`
}

// ConferenceInfo is the detail view of a conference and its members.
type ConferenceInfo struct {
	Conference ConferenceDetail `json:"conference"`
	Users      []Member         `json:"users"`
}

type ConferenceDetail struct {
	Topic        string `json:"topic"`
	Count        uint64 `json:"count"`
	TimestampEnd int64  `json:"timestamp_end"`
	Leader       uint64 `json:"leader"`
}

type Member struct {
	UID      uint64 `json:"uid"`
	Avatar   string `json:"avatar"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

// UserInfo is the messenger profile of a user.
type UserInfo struct {
	Avatar   string `json:"avatar"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

// Message is one message of a conference. Action is set for system messages such as joins.
type Message struct {
	MessageID    uint64 `json:"message_id"`
	ConferenceID uint64 `json:"conference_id"`
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	Message      string `json:"message"`
	Action       string `json:"action"`
	Timestamp    int64  `json:"timestamp"`
	Device       string `json:"device"`
}

func (Message) RequiredKeys() []string {
	return []string{"message_id", "conference_id"}
}
