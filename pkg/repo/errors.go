package repo

// Condition is a defined user-facing outcome. The command layer prints
// the text verbatim on stdout and exits 0; any other error is an
// internal failure and is surfaced loudly.
type Condition string

func (c Condition) Error() string { return string(c) }

const (
	ErrRepoExists          Condition = "A Gitlet version-control system already exists in the current directory."
	ErrNoRepo              Condition = "Not in an initialized Gitlet directory."
	ErrBadOperands         Condition = "Incorrect operands."
	ErrNoSuchFile          Condition = "File does not exist."
	ErrNoChanges           Condition = "No changes added to the commit."
	ErrEmptyMessage        Condition = "Please enter a commit message."
	ErrNoReasonToRemove    Condition = "No reason to remove the file."
	ErrFileNotInCommit     Condition = "File does not exist in that commit."
	ErrNoSuchBranch        Condition = "No such branch exists."
	ErrSameBranch          Condition = "No need to checkout the current branch."
	ErrBranchExists        Condition = "A branch with that name already exists."
	ErrRemoveCurrent       Condition = "Cannot remove the current branch."
	ErrBranchMissing       Condition = "A branch with that name does not exist."
	ErrNoSuchCommit        Condition = "No commit with that id exists."
	ErrAmbiguousCommit     Condition = "Ambiguous commit id."
	ErrNoCommitWithMessage Condition = "Found no commit with that message."
	ErrUntrackedInTheWay   Condition = "There is an untracked file in the way; delete it, or add and commit it first."
	ErrUncommittedChanges  Condition = "You have uncommitted changes."
	ErrMergeSelf           Condition = "Cannot merge a branch with itself."
)
