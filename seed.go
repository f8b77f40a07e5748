package gart

import (
	"fmt"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed hold the primary seed used for random numbers
type Seed struct {
	intSeed int64
	rng     *rand.Rand
}

// Jan 1, 2020 in seconds (to make filenames a little smaller)
const epoch2020 = 1577836800

// seedAt is the default seed for a run started at t.
func seedAt(t time.Time) int64 {
	return t.UnixNano() - epoch2020*int64(time.Second)
}

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	s := Seed{intSeed: seedAt(time.Now())}
	if hexSeed != "" {
		err := s.SetSeed(hexSeed)
		return s, err
	}
	s.rng = rand.New(rand.NewSource(s.intSeed))
	return s, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// SetSeed sets the seed given the file seed part of filename
func (s *Seed) SetSeed(hexSeed string) error {
	intSeed, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		s.rng = rand.New(rand.NewSource(s.intSeed))
		return err
	}
	s.intSeed = intSeed
	s.rng = rand.New(rand.NewSource(s.intSeed))
	return nil
}

// Rand returns the random source seeded by this seed
func (s Seed) Rand() *rand.Rand {
	return s.rng
}

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	var (
		cmdOut []byte
		err    error
	)
	cmdName := "git"
	cmdArgs := []string{"rev-parse", "--verify", "HEAD"}
	if cmdOut, err = exec.Command(cmdName, cmdArgs...).Output(); err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) < 7 {
		return hash
	}
	return hash[0:7]
}
