// Package schedule extracts day-grouped match records from the
// federation's listing pages.
//
// The listing markup is loosely structured: Korean date labels, a
// variable number of info spans per match, and optional broadcast and
// live-link metadata. The extractor tolerates every missing optional
// element, defaulting fields to nil or empty instead of failing, and the
// one genuinely ambiguous rule — telling the kickoff time, broadcasters,
// and venue apart inside an ordered span list — lives in splitGameInfo.
package schedule
