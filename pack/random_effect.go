// SPDX-License-Identifier: MIT

package pack

import "fmt"

// RandomEffectSize returns the number of random-effect variables: the sum
// over rates of ChildCount() times the rate's child grid size.
// Complexity: O(R).
func (l *Layout) RandomEffectSize() int {
	nChild := l.nodes.ChildCount()
	if nChild == 0 {
		return 0
	}
	sum := 0
	for _, base := range l.rateBase {
		sum += nChild * l.groups[base].Count
	}

	return sum
}

// UnpackRandomEffect copies the random effects out of packVec into
// randomVec, ordered by rate, then child index, then grid element.
// packVec must have Size() elements and randomVec RandomEffectSize().
// Complexity: O(RandomEffectSize()).
func (l *Layout) UnpackRandomEffect(packVec, randomVec []float64) error {
	if err := l.checkRandomVectors(packVec, randomVec); err != nil {
		return err
	}
	l.walkRandomEffect(func(packIdx, randomIdx, n int) {
		copy(randomVec[randomIdx:randomIdx+n], packVec[packIdx:packIdx+n])
	})

	return nil
}

// PackRandomEffect is the inverse of UnpackRandomEffect: it writes randomVec
// into the random-effect ranges of packVec and leaves every other element alone.
// Complexity: O(RandomEffectSize()).
func (l *Layout) PackRandomEffect(packVec, randomVec []float64) error {
	if err := l.checkRandomVectors(packVec, randomVec); err != nil {
		return err
	}
	l.walkRandomEffect(func(packIdx, randomIdx, n int) {
		copy(packVec[packIdx:packIdx+n], randomVec[randomIdx:randomIdx+n])
	})

	return nil
}

func (l *Layout) checkRandomVectors(packVec, randomVec []float64) error {
	if len(packVec) != l.size {
		return fmt.Errorf("pack vector has %d elements, want %d: %w", len(packVec), l.size, ErrVectorSize)
	}
	if want := l.RandomEffectSize(); len(randomVec) != want {
		return fmt.Errorf("random vector has %d elements, want %d: %w", len(randomVec), want, ErrVectorSize)
	}

	return nil
}

// walkRandomEffect calls fn once per child grid with its pack offset, its
// position in the random-effect vector and its length.
func (l *Layout) walkRandomEffect(fn func(packIdx, randomIdx, n int)) {
	nChild := l.nodes.ChildCount()
	randomIdx := 0
	for _, base := range l.rateBase {
		for c := 0; c < nChild; c++ {
			g := l.groups[base+c]
			fn(g.Offset, randomIdx, g.Count)
			randomIdx += g.Count
		}
	}
}
