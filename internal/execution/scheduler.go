package execution

// Scheduler distributes work items across workers
type Scheduler interface {
	Schedule(count, workerCount int) [][]int
}

// RoundRobinScheduler distributes items evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule assigns item indexes 0..count-1 to workers using round-robin
func (s *RoundRobinScheduler) Schedule(count, workerCount int) [][]int {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > count && count > 0 {
		workerCount = count
	}

	distribution := make([][]int, workerCount)
	for i := range distribution {
		distribution[i] = make([]int, 0, count/workerCount+1)
	}

	for i := 0; i < count; i++ {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], i)
	}

	return distribution
}
