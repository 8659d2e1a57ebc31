package booking

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// Blocks reports whether a booking in this status occupies the item's
// calendar. Rejected and canceled bookings never block other renters.
func (s Status) Blocks() bool {
	return s == StatusWaiting || s == StatusApproved
}

// Bucket is a temporal filter for booking listings.
type Bucket string

const (
	BucketAll      Bucket = "ALL"
	BucketCurrent  Bucket = "CURRENT"
	BucketPast     Bucket = "PAST"
	BucketFuture   Bucket = "FUTURE"
	BucketWaiting  Bucket = "WAITING"
	BucketRejected Bucket = "REJECTED"
)

func (b Bucket) String() string {
	return string(b)
}

func (b Bucket) IsValid() bool {
	switch b {
	case BucketAll, BucketCurrent, BucketPast, BucketFuture, BucketWaiting, BucketRejected:
		return true
	default:
		return false
	}
}

func NewBucket(s string) (Bucket, error) {
	b := Bucket(s)
	if !b.IsValid() {
		return "", ErrUnknownBucket
	}
	return b, nil
}
