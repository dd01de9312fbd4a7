package strfq

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
)

// NextRead reads the next record from file. done is true once the file is exhausted.
// Blank lines between records are skipped.
func NextRead(file *fileio.EasyReader) (r Read, done bool, err error) {
	var header, seq, plus, qual string
	header, done = fileio.EasyNextLine(file)
	for !done && header == "" {
		header, done = fileio.EasyNextLine(file)
	}
	if done {
		return r, true, nil
	}
	if seq, done = fileio.EasyNextLine(file); done {
		return r, true, fmt.Errorf("truncated record: %s", header)
	}
	if plus, done = fileio.EasyNextLine(file); done {
		return r, true, fmt.Errorf("truncated record: %s", header)
	}
	if qual, done = fileio.EasyNextLine(file); done {
		return r, true, fmt.Errorf("truncated record: %s", header)
	}
	r, err = parseRecord(header, seq, plus, qual)
	return r, false, err
}

// GoReadToChan streams the annotated reads in file (which may be gzipped) on the returned channel.
// Malformed records are fatal.
func GoReadToChan(file string) <-chan Read {
	ans := make(chan Read, 1000)
	go readToChan(file, ans)
	return ans
}

func readToChan(file string, c chan<- Read) {
	input := fileio.EasyOpen(file)
	var r Read
	var done bool
	var err error
	for r, done, err = NextRead(input); !done; r, done, err = NextRead(input) {
		if err != nil {
			log.Fatalf("ERROR: in parsing read name: %s\n", err)
		}
		c <- r
	}
	if err != nil {
		log.Fatalf("ERROR: %s: %s\n", file, err)
	}
	err = input.Close()
	exception.PanicOnErr(err)
	close(c)
}
