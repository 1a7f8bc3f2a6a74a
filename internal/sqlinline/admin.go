package sqlinline

const QSelectAdminByUsername = `--sql 894232c6-d8ce-4b40-93c7-4243987da965
select id, username, password_hash, email, created_at
from admin_users
where username = $1::text;
`

const QUpsertAdminUser = `--sql 4d6b973b-db2b-4d21-afba-b4336a040873
insert into admin_users(username, password_hash, email)
values ($1::text, $2::text, $3::text)
on conflict (username) do update
set password_hash = excluded.password_hash,
    email = excluded.email;
`
