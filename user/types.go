package user

import "github.com/Ceeox/proxer-go/enum"

// Credentials is the triple returned by a successful login.
type Credentials struct {
	UID    uint64 `json:"uid"`
	Avatar string `json:"avatar"`
	Token  string `json:"token"`
}

// RequiredKeys makes a login without a token fail to decode.
func (Credentials) RequiredKeys() []string {
	return []string{"uid", "token"}
}

// Info is the public profile of a user with the points per section.
type Info struct {
	UID           uint64 `json:"uid"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
	Status        string `json:"status"`
	StatusTime    int64  `json:"status_time"`
	PointsUploads uint64 `json:"points_uploads"`
	PointsAnime   uint64 `json:"points_anime"`
	PointsManga   uint64 `json:"points_manga"`
	PointsInfo    uint64 `json:"points_info"`
	PointsForum   uint64 `json:"points_forum"`
	PointsMisc    uint64 `json:"points_misc"`
}

// Points sums the points of every section.
func (i Info) Points() uint64 {
	return i.PointsUploads + i.PointsAnime + i.PointsManga + i.PointsInfo + i.PointsForum + i.PointsMisc
}

// TopTenEntry is one of a user's favourites.
type TopTenEntry struct {
	EID      uint64        `json:"eid"`
	Name     string        `json:"name"`
	Category enum.Category `json:"kat"`
	Medium   enum.Medium   `json:"medium"`
}

// ListEntry is an entry on a user's list.
type ListEntry struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Count     uint64      `json:"count"`
	Medium    enum.Medium `json:"medium"`
	EState    uint64      `json:"estate"`
	CID       uint64      `json:"cid"`
	Comment   string      `json:"comment"`
	State     string      `json:"state"`
	Episode   uint64      `json:"episode"`
	Data      string      `json:"data"`
	Rating    int8        `json:"rating"`
	Timestamp int64       `json:"timestamp"`
}

// LatestComment is a review written by a user.
type LatestComment struct {
	ID        uint64 `json:"id"`
	TID       uint64 `json:"tid"`
	State     int8   `json:"state"`
	Data      string `json:"data"`
	Comment   string `json:"comment"`
	Rating    int8   `json:"rating"`
	Episode   uint64 `json:"episode"`
	Positive  uint64 `json:"positive"`
	Timestamp int64  `json:"timestamp"`
	Username  string `json:"username"`
	UID       uint64 `json:"uid"`
	Avatar    string `json:"avatar"`
}
