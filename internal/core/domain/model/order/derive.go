package order

// DeriveStatus computes the order status from its item statuses.
// It is total and has no side effects. Rules are evaluated in this order:
//
//  1. every item pending  -> Pending (also for an empty slice)
//  2. every item verified -> Packed
//  3. every item picked   -> Picked
//  4. otherwise           -> Processing
//
// Checking "all verified" before "all picked" keeps a fully verified order
// from being reported as merely picked. Shipped is never derived.
func DeriveStatus(items []Item) Status {
	allPending, allPicked, allVerified := true, true, true
	for _, item := range items {
		switch item.Status() {
		case ItemPending:
			allPicked, allVerified = false, false
		case ItemPicked:
			allPending, allVerified = false, false
		case ItemVerified:
			allPending, allPicked = false, false
		default:
			allPending, allPicked, allVerified = false, false, false
		}
	}

	switch {
	case allPending:
		return Pending
	case allVerified:
		return Packed
	case allPicked:
		return Picked
	default:
		return Processing
	}
}
