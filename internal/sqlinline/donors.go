// Package sqlinline holds every SQL statement the application issues, one
// named constant per statement. The first line of each constant is a marker
// the infra.SQLRunner strips and logs under.
package sqlinline

const QSelectDonorByName = `--sql 9360192d-b826-4c03-9297-40262039901b
select donor_id
from donor
where name = $1::text;
`

const QUpdateDonorAddress = `--sql 2aea255e-07be-4cf5-a408-d8cfa595d64b
update donor
set address = $1::text
where donor_id = $2::bigint;
`

const QInsertDonor = `--sql ce37e678-dfdd-4933-8e41-8d5e10b3ce1e
insert into donor(name, address)
values ($1::text, $2::text)
returning donor_id;
`

const QUpsertDonorPhone = `--sql b21ee802-9df8-406a-9ca3-0ff86537e2c4
insert into donor_phone(donor_id, phone)
values ($1::bigint, $2::text)
on conflict do nothing;
`

const QUpsertDonorEmail = `--sql 4578177d-3c78-426b-bcb6-4f47eb551104
insert into donor_email(donor_id, email)
values ($1::bigint, $2::text)
on conflict do nothing;
`
