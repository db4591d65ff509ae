// Package streak runs one gitstreak pass and applies the streak policy.
//
// A run moves through INIT, CONFIG_LOADED, PRECONDITIONS_CHECKED,
// COMMIT_LOOP, STATE_UPDATE and DONE, or ends in FAILED. It draws a commit
// count N uniformly from [min_commits, max_commits] and performs up to N
// commits, waiting commit_delay seconds between consecutive ones. The loop
// stops at the first failed commit.
//
// Only a run that pushed all N commits touches the persisted state. Its
// streak continues when the previous run was at most one calendar day ago
// and restarts at 1 otherwise. A missing repository ends the run early
// without touching state and without an error.
//
// Orchestrator takes its collaborators through Options so tests can supply
// a scripted committer, a fixed clock and a sleeper that never blocks.
package streak
