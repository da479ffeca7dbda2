package build

import "os"

// mutex is an inter-process mutex backed by an advisory lock on a file.
type mutex struct {
	path string
}

func mutexAt(path string) *mutex {
	return &mutex{path: path}
}

// Lock blocks until the lock is held and returns the function releasing it.
func (m *mutex) Lock() (unlock func(), err error) {
	f, err := os.OpenFile(m.path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return nil, err
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		unlockFile(f)
		f.Close()
	}, nil
}
