// Package neoservice implements Neo curation inside the curation context.
//
// The module owns candidate-translation (Neo) submission, per-user rating
// with transactional aggregate recomputation, and the ranked term listing
// jurors and explorers read from. Rating aggregates stored on a Neo are
// always derivable from the raw rating rows; the rating command is the only
// write path that touches them. Infrastructure concerns stay behind ports
// and adapters.
package neoservice
