package store

import "github.com/juju/errors"

const postgresSchema = `
CREATE TABLE IF NOT EXISTS public.movies (
	row_id serial NOT NULL,
	line integer NOT NULL,
	title text NOT NULL,
	vote_count text NOT NULL,
	CONSTRAINT movies_pkey PRIMARY KEY (row_id)
);
`

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS movies (
	row_id INT NOT NULL AUTO_INCREMENT,
	line INT NOT NULL,
	title TEXT NOT NULL,
	vote_count VARCHAR(64) NOT NULL,
	PRIMARY KEY (row_id)
)`

// Schema returns the DDL creating the movies table for driver.
func Schema(driver string) (string, error) {
	switch driver {
	case Postgres:
		return postgresSchema, nil
	case MySQL:
		return mysqlSchema, nil
	}
	return "", errors.NotSupportedf("driver %q", driver)
}
