package search

// BestOfBothDirections runs Differential and Linear over the same round
// count and starting branch values, returning both results. It exists
// for the common case of reporting MEDCP (maximum expected differential
// characteristic probability) and MELCC (maximum expected linear
// characteristic correlation) bounds side by side for one cipher
// configuration; the two searches share no mutable state; and a failure
// validating cfg is returned once rather than duplicated across both.
func BestOfBothDirections(cfg Config, initA, initB uint32) (diff, lin Result, err error) {
	if err = cfg.Validate(); err != nil {
		return Result{}, Result{}, err
	}
	diff, err = Differential(cfg, initA, initB)
	if err != nil {
		return diff, Result{}, err
	}
	lin, err = Linear(cfg, initA, initB)
	return diff, lin, err
}
